package models

import (
	"log"

	"bitbucket.org/gradways/crm_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Client{}, &ClientDocument{},
		&StagedPayment{}, &ProductPayment{},
		&CounsellorTarget{},
		&FinanceApproval{}, &Insurance{}, &AirTicket{}, &ForexFee{}, &ForexCard{},
		&CreditCard{}, &SimCard{}, &TuitionFee{}, &Loan{}, &IeltsEnrollment{},
		&VisaExtension{}, &BeaconAccount{}, &NewSell{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
