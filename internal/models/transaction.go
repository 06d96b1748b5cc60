package models

import (
	"time"

	"stockfolio/internal/uuid"
)

// TransactionFile is a file attached to a transaction.
type TransactionFile struct {
	UUID      string  `json:"uuid" validate:"uuid"`
	FileName  string  `json:"fileName"`
	FileSize  float64 `json:"fileSize"`
	MimeType  string  `json:"mimeType" validate:"mimetype"`
	Location  string  `json:"location" validate:"filelocation"`
	CreatedAt Date    `json:"createdAt"`
}

// NewTransactionFile creates a file record with a fresh UUIDv7.
func NewTransactionFile(fileName string, fileSize int64, mimeType, location string) TransactionFile {
	return TransactionFile{
		UUID:      uuid.New(),
		FileName:  fileName,
		FileSize:  float64(fileSize),
		MimeType:  mimeType,
		Location:  location,
		CreatedAt: NewDate(time.Now().UTC()),
	}
}

// Transaction represents a financial transaction of a user.
type Transaction struct {
	ID             int64             `json:"id"`
	Owner          *User             `json:"owner" schema:"nullable"`
	Category       Category          `json:"category"`
	PaymentMethod  PaymentMethod     `json:"paymentMethod"`
	ProcessedAt    Date              `json:"processedAt"`
	Receiver       string            `json:"receiver"`
	Description    *string           `json:"description" schema:"nullable"`
	TransferAmount Amount            `json:"transferAmount"`
	AttachedFiles  []TransactionFile `json:"attachedFiles" validate:"dive"`
	CreatedAt      Date              `json:"createdAt"`
}

// CreateTransactionPayload is the request body for creating a transaction.
// Category and payment method are referenced by id.
type CreateTransactionPayload struct {
	Owner           string  `json:"owner" validate:"uuid"`
	CategoryID      int64   `json:"categoryId"`
	PaymentMethodID int64   `json:"paymentMethodId"`
	ProcessedAt     Date    `json:"processedAt"`
	Receiver        string  `json:"receiver"`
	Description     *string `json:"description" schema:"nullable"`
	TransferAmount  Amount  `json:"transferAmount"`
}

// UpdateTransactionPayload is the request body for updating a transaction.
type UpdateTransactionPayload struct {
	TransactionID   int64   `json:"transactionId"`
	CategoryID      int64   `json:"categoryId"`
	PaymentMethodID int64   `json:"paymentMethodId"`
	ProcessedAt     Date    `json:"processedAt"`
	Receiver        string  `json:"receiver"`
	Description     *string `json:"description" schema:"nullable"`
	TransferAmount  Amount  `json:"transferAmount"`
}

// TransactionRef references a transaction by id.
type TransactionRef struct {
	TransactionID int64 `json:"transactionId"`
}

// DeleteTransactionPayload is the request body for deleting transactions.
type DeleteTransactionPayload []TransactionRef

// DeleteTransactionResponsePayload reports which transactions were deleted
// and which were not. No id appears in both lists.
type DeleteTransactionResponsePayload struct {
	Success []Transaction            `json:"success" validate:"dive"`
	Failed  DeleteTransactionPayload `json:"failed" validate:"dive"`
}

// PartitionDeleted splits the requested ids into the ones found in deleted
// and the ones that were not. Every requested element ends up in exactly
// one of the two lists, in request order, so repeated ids appear once per
// request.
func PartitionDeleted(requested DeleteTransactionPayload, deleted []Transaction) DeleteTransactionResponsePayload {
	byID := make(map[int64]Transaction, len(deleted))
	for _, tx := range deleted {
		byID[tx.ID] = tx
	}

	resp := DeleteTransactionResponsePayload{
		Success: []Transaction{},
		Failed:  DeleteTransactionPayload{},
	}
	for _, ref := range requested {
		if tx, ok := byID[ref.TransactionID]; ok {
			resp.Success = append(resp.Success, tx)
		} else {
			resp.Failed = append(resp.Failed, ref)
		}
	}
	return resp
}
