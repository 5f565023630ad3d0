package analytics

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ChartBucket is one sub-period of a chart's range with its display label.
type ChartBucket struct {
	Label string
	Range DateRange
}

// chartBuckets partitions a resolved range: one bucket per calendar day for
// today/weekly/monthly/custom, one per calendar month for yearly. The final
// bucket is clamped to the range's end rather than the literal end of its
// day or month.
func chartBuckets(filter string, r DateRange) []ChartBucket {
	if filter == FilterYearly {
		return monthlyBuckets(r)
	}
	return dailyBuckets(filter, r)
}

func dailyBuckets(filter string, r DateRange) []ChartBucket {
	var buckets []ChartBucket
	for day := startOfDay(r.Start); !day.After(r.End); day = day.AddDate(0, 0, 1) {
		bucket := ChartBucket{
			Range: DateRange{Start: day, End: endOfDay(day)},
		}
		if bucket.Range.Start.Before(r.Start) {
			bucket.Range.Start = r.Start
		}
		if bucket.Range.End.After(r.End) {
			bucket.Range.End = r.End
		}
		switch filter {
		case FilterMonthly:
			bucket.Label = strconv.Itoa(day.Day())
		case FilterCustom:
			bucket.Label = day.Format("Jan Mon 2")
		default:
			bucket.Label = day.Format("Mon 2")
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func monthlyBuckets(r DateRange) []ChartBucket {
	var buckets []ChartBucket
	first := startOfDay(r.Start)
	first = first.AddDate(0, 0, -(first.Day() - 1))
	for month := first; !month.After(r.End); month = month.AddDate(0, 1, 0) {
		bucket := ChartBucket{
			Label: month.Format("Jan"),
			Range: DateRange{Start: month, End: endOfDay(month.AddDate(0, 1, -1))},
		}
		if bucket.Range.Start.Before(r.Start) {
			bucket.Range.Start = r.Start
		}
		if bucket.Range.End.After(r.End) {
			bucket.Range.End = r.End
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// StatView is a Stat at the output boundary: counts stay numeric, amounts
// render as fixed two-digit strings.
type StatView struct {
	Number int    `json:"number"`
	Amount string `json:"amount,omitempty"`
}

// ChartPoint is one plotted bucket. Admin/manager points carry the product
// splits and revenue; counsellor points carry only the client count.
type ChartPoint struct {
	Label        string    `json:"label"`
	CoreSale     *StatView `json:"coreSale,omitempty"`
	CoreProduct  *StatView `json:"coreProduct,omitempty"`
	OtherProduct *StatView `json:"otherProduct,omitempty"`
	Revenue      string    `json:"revenue,omitempty"`
	ClientCount  *int      `json:"clientCount,omitempty"`
}

// ChartData is the plotted series plus its summary line. The summary is the
// sum of the bucket values, never an independent recomputation, so it always
// equals the series total exactly.
type ChartData struct {
	Data    []ChartPoint `json:"data"`
	Summary string       `json:"summary"`
}

// AdminChart re-derives the payment-date aggregators independently per
// bucket. Buckets run concurrently and merge back by index, never through a
// shared accumulator.
func AdminChart(ctx context.Context, store Store, filter string, r DateRange, scope RoleScope) (*ChartData, error) {
	buckets := chartBuckets(filter, r)
	points := make([]ChartPoint, len(buckets))
	revenues := make([]decimal.Decimal, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		i, bucket := i, bucket
		g.Go(func() error {
			coreSale, err := CoreSaleByPayment(gctx, store, bucket.Range, scope)
			if err != nil {
				return err
			}
			coreProduct, err := CoreProduct(gctx, store, bucket.Range, scope)
			if err != nil {
				return err
			}
			otherProduct, err := OtherProduct(gctx, store, bucket.Range, scope)
			if err != nil {
				return err
			}
			revenue := coreSale.Amount.Add(coreProduct.Amount).Add(otherProduct.Amount)
			revenues[i] = revenue
			points[i] = ChartPoint{
				Label:        bucket.Label,
				CoreSale:     &StatView{Number: coreSale.Count, Amount: coreSale.Amount.StringFixed(2)},
				CoreProduct:  &StatView{Number: coreProduct.Count, Amount: coreProduct.Amount.StringFixed(2)},
				OtherProduct: &StatView{Number: otherProduct.Count, Amount: otherProduct.Amount.StringFixed(2)},
				Revenue:      revenue.StringFixed(2),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, revenue := range revenues {
		total = total.Add(revenue)
	}
	return &ChartData{Data: points, Summary: total.StringFixed(2)}, nil
}

// CounsellorChart plots enrollment volume per bucket: counsellors see client
// counts, not dollar figures.
func CounsellorChart(ctx context.Context, store Store, filter string, r DateRange, scope RoleScope) (*ChartData, error) {
	buckets := chartBuckets(filter, r)
	points := make([]ChartPoint, len(buckets))
	counts := make([]int, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		i, bucket := i, bucket
		g.Go(func() error {
			count, err := TotalClients(gctx, store, bucket.Range, scope)
			if err != nil {
				return err
			}
			counts[i] = count
			points[i] = ChartPoint{Label: bucket.Label, ClientCount: &counts[i]}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	return &ChartData{Data: points, Summary: strconv.Itoa(total)}, nil
}
