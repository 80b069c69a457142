package services

import (
	"strings"
	"time"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// TransferService moves balance between two accounts atomically. Either
// both legs apply or neither does, so the total balance across all
// accounts is conserved by every call, successful or not.
type TransferService struct {
	store  *persistence.Store
	notify *NotificationService
}

// NewTransferService creates a new transfer service
func NewTransferService(store *persistence.Store, notify *NotificationService) *TransferService {
	return &TransferService{store: store, notify: notify}
}

// TransferInput represents a peer-to-peer transfer request. The receiver
// is addressed by username, matching how senders identify each other.
type TransferInput struct {
	ReceiverUsername string `json:"recipient" validate:"required"`
	Amount           int64  `json:"amount" validate:"required,gt=0"`
}

// TransferOutput is the result used to refresh the sender's views
type TransferOutput struct {
	SenderBalance    int64  `json:"senderBalance"`
	ReceiverUsername string `json:"receiverUsername"`
	Amount           int64  `json:"amount"`
}

// Transfer debits the sender and credits the receiver in one atomic unit,
// journaling a debit view for the sender and a credit view for the
// receiver.
func (s *TransferService) Transfer(senderID string, input *TransferInput) (*TransferOutput, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var out TransferOutput
	err := s.store.Mutate(func(st *persistence.State) error {
		sender, err := st.Account(senderID)
		if err != nil {
			return err
		}
		receiver, err := st.AccountByUsername(strings.TrimSpace(input.ReceiverUsername))
		if err != nil {
			return err
		}
		if sender.ID == receiver.ID {
			return domain.ErrSameAccount
		}

		if err := st.AdjustBalance(sender.ID, -input.Amount); err != nil {
			return err
		}
		if err := st.AdjustBalance(receiver.ID, input.Amount); err != nil {
			return err
		}

		now := time.Now()
		st.AppendJournal(domain.JournalEntry{
			ID:           uuid.NewString(),
			AccountID:    sender.ID,
			Kind:         domain.JournalSend,
			Amount:       input.Amount,
			Counterparty: "@" + receiver.Username,
			Timestamp:    now,
		})
		st.AppendJournal(domain.JournalEntry{
			ID:           uuid.NewString(),
			AccountID:    receiver.ID,
			Kind:         domain.JournalReceive,
			Amount:       input.Amount,
			Counterparty: "@" + sender.Username,
			Timestamp:    now,
		})

		out = TransferOutput{
			SenderBalance:    sender.Balance,
			ReceiverUsername: receiver.Username,
			Amount:           input.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Transfers", domain.NotifyMoney, "%d sent to @%s", out.Amount, out.ReceiverUsername)
	return &out, nil
}
