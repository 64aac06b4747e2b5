package appropriation

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestValidatePurpose(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		purpose  string
		valid    bool
	}{
		{"O&M travel", OperationsMaintenance, "travel", true},
		{"O&M research", OperationsMaintenance, "research", false},
		{"RDTE research", RDTE, "research", true},
		{"MILPERS military pay", MilitaryPersonnel, "military-pay", true},
		{"procurement weapons", Procurement, "weapons", true},
		{"MILCON construction", MilitaryConstruction, "construction", true},
		{"O&M construction", OperationsMaintenance, "construction", false},
		{"empty purpose", OperationsMaintenance, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidatePurpose(tt.category, tt.purpose)
			assert.Equal(t, tt.valid, r.Valid())
		})
	}
}

func TestValidatePurposeListsAuthorized(t *testing.T) {
	r := ValidatePurpose(RDTE, "fuel")
	assert.Equal(t, 1, len(r.Errors))
	assert.Contains(t, r.Errors[0].Message, "research")
	assert.Equal(t, "31 U.S.C. 1301(a)", r.Errors[0].Statute)
}

func TestRecommendEquipmentThreshold(t *testing.T) {
	th := DefaultThresholds()

	small := Recommend("equipment", decimal.New(249_999, 0), th)
	assert.True(t, len(small) > 0)
	assert.Equal(t, OperationsMaintenance, small[0].Category)

	large := Recommend("equipment", decimal.New(250_000, 0), th)
	assert.True(t, len(large) > 0)
	assert.Equal(t, Procurement, large[0].Category)
}

func TestRecommendConstructionThreshold(t *testing.T) {
	th := DefaultThresholds()

	major := Recommend("construction", decimal.New(750_000, 0), th)
	assert.True(t, len(major) > 0)
	assert.Equal(t, MilitaryConstruction, major[0].Category)

	minor := Recommend("construction", decimal.New(500_000, 0), th)
	assert.True(t, len(minor) > 0)
	assert.Equal(t, OperationsMaintenance, minor[0].Category)
}

func TestRecommendUnknownPurpose(t *testing.T) {
	assert.Zero(t, Recommend("lobbying", decimal.New(1000, 0), DefaultThresholds()))
}

func TestRecommendRanksAreSequential(t *testing.T) {
	recs := Recommend("equipment", decimal.New(1_000_000, 0), DefaultThresholds())
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Rank)
	}
}

func TestValidateNoCommingling(t *testing.T) {
	tests := []struct {
		name     string
		entries  []ActivityEntry
		errors   int
		warnings int
	}{
		{
			name: "single category single year",
			entries: []ActivityEntry{
				{ActivityID: "a1", Category: OperationsMaintenance, FiscalYear: 2024},
				{ActivityID: "a1", Category: OperationsMaintenance, FiscalYear: 2024},
			},
		},
		{
			name: "mixed categories",
			entries: []ActivityEntry{
				{ActivityID: "a1", Category: OperationsMaintenance, FiscalYear: 2024},
				{ActivityID: "a1", Category: Procurement, FiscalYear: 2024},
			},
			errors: 1,
		},
		{
			name: "mixed years without authority",
			entries: []ActivityEntry{
				{ActivityID: "a1", Category: RDTE, FiscalYear: 2024},
				{ActivityID: "a1", Category: RDTE, FiscalYear: 2025},
			},
			warnings: 1,
		},
		{
			name: "mixed years with authority",
			entries: []ActivityEntry{
				{ActivityID: "a1", Category: RDTE, FiscalYear: 2024},
				{ActivityID: "a1", Category: RDTE, FiscalYear: 2025, IncrementalAuthorized: true},
			},
		},
		{
			name: "independent activities are not commingled",
			entries: []ActivityEntry{
				{ActivityID: "a1", Category: OperationsMaintenance, FiscalYear: 2024},
				{ActivityID: "a2", Category: Procurement, FiscalYear: 2024},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateNoCommingling(tt.entries)
			assert.Equal(t, tt.errors, len(r.Errors))
			assert.Equal(t, tt.warnings, len(r.Warnings))
		})
	}
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	var zero Thresholds
	assert.Error(t, zero.Validate())

	bad := DefaultThresholds()
	bad.HighConsumption = decimal.NewFromFloat(1.5)
	assert.Error(t, bad.Validate())
}
