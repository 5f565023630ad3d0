package analytics

// Entity type keys stored in ProductPayment.EntityType. This is a closed set:
// adding a product type means adding a registry entry below, there is no
// dynamic table lookup.
const (
	EntityAllFinance    = "allFinance_id"
	EntityInsurance     = "insurance_id"
	EntityAirTicket     = "airTicket_id"
	EntityForexFee      = "forexFee_id"
	EntityForexCard     = "forexCard_id"
	EntityCreditCard    = "creditCard_id"
	EntitySimCard       = "simCard_id"
	EntityTuitionFee    = "tuitionFee_id"
	EntityLoan          = "loan_id"
	EntityIelts         = "ielts_id"
	EntityVisaExtension = "visaExtension_id"
	EntityBeaconAccount = "beaconAccount_id"
	EntityNewSell       = "newSell_id"
)

// EntityKind describes how one product entity table joins into the
// aggregates: which table, which date column bounds the period, and whether
// the rows carry a dollar amount. Count-only kinds contribute to counts but
// always a zero amount.
type EntityKind struct {
	Type         string
	Table        string
	DateColumn   string
	AmountColumn string // empty for count-only kinds
	CountOnly    bool
}

var entityRegistry = map[string]EntityKind{
	EntityAllFinance:    {Type: EntityAllFinance, Table: "finance_approvals", DateColumn: "approval_date", AmountColumn: "amount"},
	EntityInsurance:     {Type: EntityInsurance, Table: "insurances", DateColumn: "insurance_date", CountOnly: true},
	EntityAirTicket:     {Type: EntityAirTicket, Table: "air_tickets", DateColumn: "ticket_date", CountOnly: true},
	EntityForexFee:      {Type: EntityForexFee, Table: "forex_fees", DateColumn: "payment_date", CountOnly: true},
	EntityForexCard:     {Type: EntityForexCard, Table: "forex_cards", DateColumn: "issue_date", CountOnly: true},
	EntityCreditCard:    {Type: EntityCreditCard, Table: "credit_cards", DateColumn: "issue_date", CountOnly: true},
	EntitySimCard:       {Type: EntitySimCard, Table: "sim_cards", DateColumn: "activation_date", CountOnly: true},
	EntityTuitionFee:    {Type: EntityTuitionFee, Table: "tuition_fees", DateColumn: "payment_date", CountOnly: true},
	EntityLoan:          {Type: EntityLoan, Table: "loans", DateColumn: "disbursment_date", CountOnly: true},
	EntityIelts:         {Type: EntityIelts, Table: "ielts_enrollments", DateColumn: "enrollment_date", AmountColumn: "amount"},
	EntityVisaExtension: {Type: EntityVisaExtension, Table: "visa_extensions", DateColumn: "extension_date", AmountColumn: "amount"},
	EntityBeaconAccount: {Type: EntityBeaconAccount, Table: "beacon_accounts", DateColumn: "opening_date", CountOnly: true},
	EntityNewSell:       {Type: EntityNewSell, Table: "new_sells", DateColumn: "sell_date", AmountColumn: "amount"},
}

// otherEntityTypes lists every entity kind that feeds the other-product
// aggregate, in a fixed order so result assembly is deterministic.
var otherEntityTypes = []string{
	EntityInsurance,
	EntityAirTicket,
	EntityForexFee,
	EntityForexCard,
	EntityCreditCard,
	EntitySimCard,
	EntityTuitionFee,
	EntityLoan,
	EntityIelts,
	EntityVisaExtension,
	EntityBeaconAccount,
	EntityNewSell,
}

// LookupEntityKind returns false for unknown entity types; callers treat that
// as a zero contribution rather than an error so one bad product reference
// cannot abort a whole dashboard.
func LookupEntityKind(entityType string) (EntityKind, bool) {
	kind, ok := entityRegistry[entityType]
	return kind, ok
}

// countOnlyProductNames classifies direct (amount-bearing) product payment
// rows that are counted but never contribute to dollar totals.
var countOnlyProductNames = map[string]bool{
	"LOAN":           true,
	"FOREX_CARD":     true,
	"TUITION_FEE":    true,
	"CREDIT_CARD":    true,
	"SIM_CARD":       true,
	"INSURANCE":      true,
	"BEACON_ACCOUNT": true,
	"AIR_TICKET":     true,
	"FOREX_FEE":      true,
}

func IsCountOnlyProduct(productName string) bool {
	return countOnlyProductNames[productName]
}
