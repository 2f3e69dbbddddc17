package dto

type ArchivedInvoice struct {
	Number   string `json:"number"`
	Location string `json:"location"`
}
