package transaction

// Transaction is the API response model for a normalized ledger row.
// It is used only for responses, not for request bodies.
type Transaction struct {
	Line         int    `json:"line" doc:"Source line number in the CSV file"`
	Date         string `json:"date" doc:"Transaction date as YYYY-MM-DD"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	RunningTotal string `json:"runningTotal" doc:"Cumulative sum of amounts up to and including this row"`
}
