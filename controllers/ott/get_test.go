package ottcontroller

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/plans"
)

func TestHydratePlansFromLegacyData(t *testing.T) {
	svc := models.OttService{
		Stock:             plans.StockOut,
		LegacyPlanData:    models.RawJSON(`[{"duration":"1 month"}]`),
		LegacyHeadingData: models.RawJSON(`[{"planDurations":"1 month","Price":["500"]}]`),
	}

	hydratePlans(&svc)
	if len(svc.Plans) != 1 {
		t.Fatalf("expected 1 plan, got %+v", svc.Plans)
	}
	plan := svc.Plans[0]
	if plan.Duration != "1 month" || plan.Price == nil || *plan.Price != 500 || plan.StockStatus != plans.StockOut {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestHydratePlansKeepsCanonical(t *testing.T) {
	price := 900.0
	svc := models.OttService{
		Plans:          models.PlanList{{Duration: "1 year", Price: &price, StockStatus: plans.StockIn}},
		LegacyPlanData: models.RawJSON(`[{"duration":"ignored"}]`),
	}

	hydratePlans(&svc)
	if len(svc.Plans) != 1 || svc.Plans[0].Duration != "1 year" {
		t.Fatalf("canonical plans were overwritten: %+v", svc.Plans)
	}
}

func TestServiceViewPriceRange(t *testing.T) {
	low, high := 500.0, 4000.0
	svc := models.OttService{
		Plans: models.PlanList{
			{Duration: "1 month", Price: &low, StockStatus: plans.StockIn},
			{Duration: "1 year", Price: &high, StockStatus: plans.StockIn},
			{Duration: "lifetime", StockStatus: plans.StockIn},
		},
	}

	view := serviceView(svc)
	rangeView, ok := view["priceRange"].(gin.H)
	if !ok {
		t.Fatalf("priceRange missing: %+v", view)
	}
	if rangeView["min"] != 500.0 || rangeView["max"] != 4000.0 {
		t.Fatalf("unexpected range: %+v", rangeView)
	}

	// No priced plans: the range is omitted and the service price stands.
	view = serviceView(models.OttService{Price: 1200})
	if _, present := view["priceRange"]; present {
		t.Fatal("priceRange should be absent without priced plans")
	}
}
