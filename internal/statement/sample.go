package statement

// SampleStatement returns a fully populated fixture mirroring a real Q1 2021
// statement. Used by the CLI's --sample mode and as a reference in tests.
func SampleStatement() StatementData {
	return StatementData{
		AccountHolderName:  "YU-HSIN WU",
		StatementStartDate: "January 1, 2021",
		StatementEndDate:   "March 31, 2021",

		TotalPortfolioBalance: "$501,974.66",
		BeginningBalance:      "$460,806.88",
		EndingBalance:         "$501,974.66",

		EquitiesValue:         "$351,832.90",
		EquitiesPercentage:    "70.09%",
		FixedIncomeValue:      "$59,636.94",
		FixedIncomePercentage: "11.88%",
		MultiAssetValue:       "$90,504.82",
		MultiAssetPercentage:  "18.03%",

		EmployeeContributions: "$8,250.02",
		EmployerContributions: "$7,425.03",
		TotalGainsLoss:        "$25,492.73",
		PersonalRateOfReturn:  "5.45%",

		EstimatedMonthlyIncomeAtRetirement: "$8,568.00",
		AverageMonthlyContribution:         "$3,466.00",

		VestingStatus: "Delayed vesting provision applies for employer contributions - employer maintains vesting information. 100% vested in voluntary/personal contributions.",
		PlanDetails: []PlanDetail{
			{PlanNumber: "1", PlanType: "RETIREMENT PLAN", Balance: "$228,743.55"},
			{PlanNumber: "2", PlanType: "VOLUNTARY EMPLOYEE RETIREMENT PLAN", Balance: "$182,726.29"},
			{PlanNumber: "3", PlanType: "MATCHING PLAN", Balance: "$46,554.92"},
			{PlanNumber: "4", PlanType: "BASIC PLAN", Balance: "$22,187.84"},
			{PlanNumber: "5", PlanType: "SUPPLEMENTAL RETIREMENT ANNUITY PLAN", Balance: "$21,762.06"},
		},
	}
}
