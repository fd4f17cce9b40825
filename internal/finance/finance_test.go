package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

func TestCalculateMortgage(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		m, err := CalculateMortgage(750000, 150000, 6.5, 30)
		if err != nil {
			t.Fatalf("CalculateMortgage: %v", err)
		}
		if m.LoanAmount != 600000 {
			t.Fatalf("loan=%v want=600000", m.LoanAmount)
		}
		if m.MonthlyPayment <= 0 || m.MonthlyPayment >= m.LoanAmount/12*2 {
			t.Fatalf("monthly payment %v out of sanity bounds", m.MonthlyPayment)
		}
		if math.Abs(m.MonthlyPayment-3792.41) > 0.01 {
			t.Fatalf("monthly=%.4f want≈3792.41", m.MonthlyPayment)
		}
		if m.TotalInterest != m.TotalPayment-m.LoanAmount {
			t.Fatalf("total interest %v != total payment %v - loan %v", m.TotalInterest, m.TotalPayment, m.LoanAmount)
		}
	})

	t.Run("zero rate is straight line", func(t *testing.T) {
		m, err := CalculateMortgage(400000, 40000, 0, 15)
		if err != nil {
			t.Fatalf("CalculateMortgage: %v", err)
		}
		if m.MonthlyPayment != 360000.0/180 {
			t.Fatalf("monthly=%v want=%v", m.MonthlyPayment, 360000.0/180)
		}
		if m.TotalInterest != 0 {
			t.Fatalf("interest=%v want=0", m.TotalInterest)
		}
		if m.TotalInterest != m.TotalPayment-m.LoanAmount {
			t.Fatalf("interest identity broken")
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name              string
			price, down, rate float64
			term              int
		}{
			{"zero term", 100, 10, 5, 0},
			{"negative term", 100, 10, 5, -1},
			{"down exceeds price", 100, 110, 5, 30},
			{"down equals price", 100, 100, 5, 30},
			{"negative rate", 100, 10, -1, 30},
		}
		for _, tc := range cases {
			if _, err := CalculateMortgage(tc.price, tc.down, tc.rate, tc.term); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("%s: err=%v want ErrInvalidInput", tc.name, err)
			}
		}
	})
}

func TestAnalyzeMarket(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		if _, ok := AnalyzeMarket(nil); ok {
			t.Fatalf("expected no data")
		}
	})

	props := []domain.Property{
		{Type: domain.TypeResidential, Price: 750000},
		{Type: domain.TypeCommercial, Price: 5000},
		{Type: domain.TypeResidential, Price: 250000},
	}
	stats, ok := AnalyzeMarket(props)
	if !ok {
		t.Fatalf("expected data")
	}
	if stats.Total != 3 || stats.MinPrice != 5000 || stats.MaxPrice != 750000 {
		t.Fatalf("stats=%+v", stats)
	}
	if stats.AveragePrice != 1005000.0/3 {
		t.Fatalf("average=%v", stats.AveragePrice)
	}
	if len(stats.ByType) != 2 {
		t.Fatalf("by type=%d want=2", len(stats.ByType))
	}
	if got := stats.ByType[0]; got.Type != domain.TypeResidential || got.Count != 2 || got.AveragePrice != 500000 {
		t.Fatalf("residential=%+v", got)
	}
	if got := stats.ByType[1]; got.Type != domain.TypeCommercial || got.Count != 1 || got.AveragePrice != 5000 {
		t.Fatalf("commercial=%+v", got)
	}
}

func TestEstimateValue(t *testing.T) {
	subject := domain.Property{Price: 100000, Features: []string{"Garage", "Pool", "Garden"}}

	if v := EstimateValue(subject, nil); v != 100000 {
		t.Fatalf("no comps value=%v want=100000", v)
	}

	comps := []domain.Property{{Price: 90000}, {Price: 110000}}
	if v := EstimateValue(subject, comps); v != 110000 {
		t.Fatalf("value=%v want=110000", v)
	}
}

func TestCommission(t *testing.T) {
	c, err := Commission(500000, 0.03)
	if err != nil {
		t.Fatalf("Commission: %v", err)
	}
	if math.Abs(c-15000) > 1e-9 {
		t.Fatalf("commission=%v want=15000", c)
	}
	if _, err := Commission(100, 1.2); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err=%v want ErrInvalidInput", err)
	}
}

func TestApplyCommission(t *testing.T) {
	agent := domain.Agent{CommissionRate: 0.025}

	txn := domain.Transaction{Amount: 400000}
	if err := ApplyCommission(&txn, agent); err != nil {
		t.Fatalf("ApplyCommission: %v", err)
	}
	if txn.Commission != 10000 {
		t.Fatalf("commission=%v want=10000", txn.Commission)
	}

	preset := domain.Transaction{Amount: 400000, Commission: 1}
	if err := ApplyCommission(&preset, agent); err != nil {
		t.Fatalf("ApplyCommission: %v", err)
	}
	if preset.Commission != 1 {
		t.Fatalf("preset commission overwritten: %v", preset.Commission)
	}
}
