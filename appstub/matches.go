package appstub

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Match is a created match looking for an opponent.
type Match struct {
	ID            uint64
	Owner         string
	Club          string
	Stadium       string
	Date          string
	Time          string
	ContactNumber string
	Description   string
	CreatedAt     time.Time
}

// MatchInput is the create-match form payload.
type MatchInput struct {
	Club          string `json:"club" validate:"required"`
	Stadium       string `json:"stadium" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,vnphone"`
	Description   string `json:"description"`
}

var vnPhonePattern = regexp.MustCompile(`^(0|\+84)(3|5|7|8|9)\d{8}$`)

func newMatchValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("vnphone", func(fl validator.FieldLevel) bool {
		return vnPhonePattern.MatchString(fl.Field().String())
	})
	return v
}

// matchErrorMessages maps a failed field to its user-facing message.
var matchErrorMessages = map[string]string{
	"Club":          "Vui lòng chọn câu lạc bộ.",
	"Stadium":       "Vui lòng chọn sân bóng.",
	"Date":          "Vui lòng chọn ngày thi đấu",
	"Time":          "Vui lòng chọn giờ thi đấu",
	"ContactNumber": "Số điện thoại không hợp lệ",
}

// MatchStore holds created matches and validates inputs.
type MatchStore struct {
	validate *validator.Validate

	mu      sync.RWMutex
	matches []Match
	nextID  uint64
}

// NewMatchStore creates an empty store.
func NewMatchStore() *MatchStore {
	return &MatchStore{
		validate: newMatchValidator(),
		nextID:   1,
	}
}

// Validate checks the input and returns one message per failed field, keyed
// by the JSON field name, empty when the input is valid.
func (s *MatchStore) Validate(input MatchInput) map[string]string {
	messages := map[string]string{}
	if err := s.validate.Struct(input); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string]string{"form": "Dữ liệu không hợp lệ"}
		}
		for _, fieldErr := range errs {
			if msg, known := matchErrorMessages[fieldErr.Field()]; known {
				messages[jsonFieldName(fieldErr.Field())] = msg
			}
		}
	}
	if _, failed := messages["date"]; !failed && input.Date != "" {
		if msg, ok := validateDate(input.Date, time.Now()); !ok {
			messages["date"] = msg
		}
	}
	if len(messages) == 0 {
		return nil
	}
	return messages
}

const matchDateLayout = "01/02/2006"

// validateDate rejects a parseable date that lies before today. An
// unparseable date already failed the required check or stays as typed.
func validateDate(date string, now time.Time) (string, bool) {
	parsed, err := time.ParseInLocation(matchDateLayout, date, now.Location())
	if err != nil {
		return "", true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return "Ngày thi đấu không được ở quá khứ", false
	}
	return "", true
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Club":
		return "club"
	case "Stadium":
		return "stadium"
	case "Date":
		return "date"
	case "Time":
		return "time"
	case "ContactNumber":
		return "contactNumber"
	default:
		return structField
	}
}

// Create validates and stores a match. On validation failure the field
// messages are returned and nothing is stored.
func (s *MatchStore) Create(owner string, input MatchInput) (Match, map[string]string) {
	if messages := s.Validate(input); len(messages) > 0 {
		return Match{}, messages
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match := Match{
		ID:            s.nextID,
		Owner:         owner,
		Club:          input.Club,
		Stadium:       input.Stadium,
		Date:          input.Date,
		Time:          input.Time,
		ContactNumber: input.ContactNumber,
		Description:   input.Description,
		CreatedAt:     time.Now(),
	}
	s.nextID++
	s.matches = append(s.matches, match)
	return match, nil
}

// ByOwner returns the owner's matches, newest first.
func (s *MatchStore) ByOwner(owner string) []Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := lo.Filter(s.matches, func(m Match, _ int) bool {
		return m.Owner == owner
	})
	return lo.Reverse(owned)
}

// Cancel removes a match if it belongs to the owner.
func (s *MatchStore) Cancel(owner string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.matches {
		if m.ID == id && m.Owner == owner {
			s.matches = append(s.matches[:i], s.matches[i+1:]...)
			return true
		}
	}
	return false
}
