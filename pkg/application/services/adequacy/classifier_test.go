package adequacy

import (
	"testing"

	"github.com/shopspring/decimal"

	testhelpers "github.com/prepstock/prepstock/pkg/application/services/testing"
	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// Tests pin "today" so expiration math is deterministic.
var testToday = dateonly.New(2026, 3, 15)

func newTestClassifier(opts Options) *Classifier {
	return NewClassifier(dateonly.FixedClock{Day: testToday}, opts)
}

func item(quantity string, expiration *dateonly.Date, neverExpires, markedAsEnough bool) entities.InventoryItem {
	return *testhelpers.MustCreateItem(
		"item-1", entities.CategoryFood, entities.TemplateItemType("tpl-1"),
		"Test item", quantity, entities.UnitPieces,
		expiration, neverExpires, markedAsEnough,
	)
}

func TestClassify_Precedence(t *testing.T) {
	opts := DefaultOptions()
	opts.ExpiringSoonThresholdDays = 14

	expired := testhelpers.DateOf("2026-03-10")
	expiringSoon := testhelpers.DateOf("2026-03-25") // 10 days out
	today := testhelpers.DateOf("2026-03-15")
	farFuture := testhelpers.DateOf("2027-01-01")

	tests := []struct {
		name   string
		item   entities.InventoryItem
		target string
		want   entities.ItemStatus
	}{
		{
			name:   "expired is critical regardless of quantity",
			item:   item("100", expired, false, false),
			target: "10",
			want:   entities.StatusCritical,
		},
		{
			name:   "expired is critical regardless of marked as enough",
			item:   item("100", expired, false, true),
			target: "10",
			want:   entities.StatusCritical,
		},
		{
			name:   "expiring soon is a warning regardless of quantity",
			item:   item("100", expiringSoon, false, false),
			target: "10",
			want:   entities.StatusWarning,
		},
		{
			name:   "expiring soon is a warning regardless of marked as enough",
			item:   item("100", expiringSoon, false, true),
			target: "10",
			want:   entities.StatusWarning,
		},
		{
			name:   "expires today still counts as expiring soon",
			item:   item("100", today, false, false),
			target: "10",
			want:   entities.StatusWarning,
		},
		{
			name:   "never expires wins over a recorded date",
			item:   item("100", expired, true, false),
			target: "10",
			want:   entities.StatusOK,
		},
		{
			name:   "marked as enough silences quantity checks",
			item:   item("1", farFuture, false, true),
			target: "100",
			want:   entities.StatusOK,
		},
		{
			name:   "zero quantity is critical",
			item:   item("0", nil, true, false),
			target: "10",
			want:   entities.StatusCritical,
		},
		{
			name:   "below half of target is a warning",
			item:   item("4", farFuture, false, false),
			target: "10",
			want:   entities.StatusWarning,
		},
		{
			name:   "exactly half of target is ok",
			item:   item("5", farFuture, false, false),
			target: "10",
			want:   entities.StatusOK,
		},
		{
			name:   "at target is ok",
			item:   item("10", nil, true, false),
			target: "10",
			want:   entities.StatusOK,
		},
		{
			name:   "zero target with stock is ok",
			item:   item("3", nil, true, false),
			target: "0",
			want:   entities.StatusOK,
		},
	}

	classifier := newTestClassifier(opts)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.item, decimal.RequireFromString(tt.target))
			if got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_AlwaysReturnsDefinedStatus(t *testing.T) {
	classifier := newTestClassifier(DefaultOptions())

	quantities := []string{"0", "0.5", "1", "9.99", "10", "1000000"}
	targets := []string{"0", "1", "10", "58"}
	dates := []*dateonly.Date{nil, testhelpers.DateOf("2020-01-01"), testhelpers.DateOf("2030-01-01")}

	for _, q := range quantities {
		for _, target := range targets {
			for _, exp := range dates {
				for _, never := range []bool{false, true} {
					for _, enough := range []bool{false, true} {
						got := classifier.Classify(item(q, exp, never, enough), decimal.RequireFromString(target))
						switch got {
						case entities.StatusOK, entities.StatusWarning, entities.StatusCritical:
						default:
							t.Fatalf("Classify() returned out-of-range status %d", got)
						}
					}
				}
			}
		}
	}
}

func TestExpiryStateOf(t *testing.T) {
	opts := DefaultOptions()
	opts.ExpiringSoonThresholdDays = 14
	classifier := newTestClassifier(opts)

	tests := []struct {
		name string
		item entities.InventoryItem
		want ExpiryState
	}{
		{"no date recorded", item("1", nil, false, false), ExpiryNone},
		{"never expires", item("1", testhelpers.DateOf("2020-01-01"), true, false), ExpiryNone},
		{"yesterday is expired", item("1", testhelpers.DateOf("2026-03-14"), false, false), ExpiryExpired},
		{"today reads as zero days left", item("1", testhelpers.DateOf("2026-03-15"), false, false), ExpiryExpiringSoon},
		{"at threshold is expiring soon", item("1", testhelpers.DateOf("2026-03-29"), false, false), ExpiryExpiringSoon},
		{"past threshold is fresh", item("1", testhelpers.DateOf("2026-03-30"), false, false), ExpiryFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.ExpiryStateOf(tt.item); got != tt.want {
				t.Errorf("ExpiryStateOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
