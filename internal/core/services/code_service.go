package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// codeAlphabet excludes easily confused characters (0/O, 1/I/L)
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// codeRetries bounds regeneration attempts before giving up on a collision
const codeRetries = 5

// CodeService is the redemption code registry: it issues single-use
// prepaid codes and consumes them exactly once.
type CodeService struct {
	store  *persistence.Store
	notify *NotificationService
}

// NewCodeService creates a new code service
func NewCodeService(store *persistence.Store, notify *NotificationService) *CodeService {
	return &CodeService{store: store, notify: notify}
}

// IssueInput represents a batch issuance request
type IssueInput struct {
	Count     int   `json:"count" validate:"required,gt=0"`
	FaceValue int64 `json:"amount" validate:"required,gt=0"`
}

// Issue generates a batch of redemption codes. Administrators mint codes
// freely; merchants pay face value for every code out of their wallet,
// and that debit is journaled as a single issue_code event.
func (s *CodeService) Issue(issuerID string, input *IssueInput) ([]domain.RedemptionCode, error) {
	if input.Count <= 0 || input.Count > 100 || input.FaceValue <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var issued []domain.RedemptionCode
	err := s.store.Mutate(func(st *persistence.State) error {
		issuer, err := st.Account(issuerID)
		if err != nil {
			return err
		}

		prefix := "FP"
		if issuer.Role == domain.RoleMerchant {
			prefix = "FP-M"
			totalCost := input.FaceValue * int64(input.Count)
			if err := st.AdjustBalance(issuer.ID, -totalCost); err != nil {
				return err
			}
			st.AppendJournal(domain.JournalEntry{
				ID:           uuid.NewString(),
				AccountID:    issuer.ID,
				Kind:         domain.JournalIssueCode,
				Amount:       totalCost,
				Counterparty: fmt.Sprintf("%d prepaid codes", input.Count),
				Timestamp:    time.Now(),
			})
		}

		now := time.Now()
		issued = issued[:0]
		for i := 0; i < input.Count; i++ {
			code, err := registerCode(st, prefix, input.FaceValue, issuer.ID, now)
			if err != nil {
				return err
			}
			issued = append(issued, code)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Codes", domain.NotifyMoney, "%d codes issued at %d each", input.Count, input.FaceValue)
	return issued, nil
}

// registerCode generates and stores one code, regenerating on the
// (negligible but possible) collision instead of overwriting.
func registerCode(st *persistence.State, prefix string, faceValue int64, issuerID string, now time.Time) (domain.RedemptionCode, error) {
	for attempt := 0; attempt < codeRetries; attempt++ {
		code := domain.RedemptionCode{
			Code:      fmt.Sprintf("%s-%s-%s", prefix, randomSegment(4), randomSegment(4)),
			FaceValue: faceValue,
			IssuedBy:  issuerID,
			IssuedAt:  now,
		}
		err := st.AddCode(code)
		if err == nil {
			return code, nil
		}
		if err != domain.ErrCodeCollision {
			return domain.RedemptionCode{}, err
		}
	}
	return domain.RedemptionCode{}, domain.ErrCodeCollision
}

// randomSegment draws n characters from the code alphabet using crypto/rand
func randomSegment(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken
			panic(err)
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out)
}

// Redeem consumes a code and credits its face value to the redeemer.
// Redemption is exclusive: the consumed flag flips inside the same atomic
// unit as the balance credit, so a code can never pay out twice.
func (s *CodeService) Redeem(redeemerID, code string) (int64, error) {
	var faceValue int64
	err := s.store.Mutate(func(st *persistence.State) error {
		rc, err := st.Code(code)
		if err != nil {
			return err
		}
		if rc.Consumed {
			return domain.ErrCodeAlreadyUsed
		}
		if rc.Disabled {
			return domain.ErrCodeDisabled
		}

		redeemer, err := st.Account(redeemerID)
		if err != nil {
			return err
		}
		if err := st.AdjustBalance(redeemer.ID, rc.FaceValue); err != nil {
			return err
		}

		now := time.Now()
		rc.Consumed = true
		rc.ConsumedBy = redeemer.ID
		rc.ConsumedAt = &now
		faceValue = rc.FaceValue

		st.AppendJournal(domain.JournalEntry{
			ID:           uuid.NewString(),
			AccountID:    redeemer.ID,
			Kind:         domain.JournalRedeem,
			Amount:       rc.FaceValue,
			Counterparty: "prepaid code",
			RelatedID:    rc.Code,
			Timestamp:    now,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.notify.Push("Top-up", domain.NotifyMoney, "Code redeemed for %d", faceValue)
	return faceValue, nil
}

// SetDisabled toggles whether an unconsumed code can be redeemed
func (s *CodeService) SetDisabled(code string, disabled bool) (*domain.RedemptionCode, error) {
	var out domain.RedemptionCode
	err := s.store.Mutate(func(st *persistence.State) error {
		rc, err := st.Code(code)
		if err != nil {
			return err
		}
		if rc.Consumed {
			return domain.ErrCodeAlreadyUsed
		}
		rc.Disabled = disabled
		out = *rc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every issued code, newest first
func (s *CodeService) List() ([]domain.RedemptionCode, error) {
	var out []domain.RedemptionCode
	err := s.store.View(func(st *persistence.State) error {
		codes := st.Codes()
		for i := len(codes) - 1; i >= 0; i-- {
			out = append(out, codes[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByIssuer returns the codes issued by one account, newest first
func (s *CodeService) ListByIssuer(issuerID string) ([]domain.RedemptionCode, error) {
	var out []domain.RedemptionCode
	err := s.store.View(func(st *persistence.State) error {
		codes := st.CodesByIssuer(issuerID)
		for i := len(codes) - 1; i >= 0; i-- {
			out = append(out, codes[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
