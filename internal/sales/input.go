package sales

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/erazemk/cardledger/internal/model"
)

// Input is a sale as submitted by a form or API client.
type Input struct {
	ID         string          `json:"id"`
	DateTime   time.Time       `json:"date_time" validate:"required"`
	CardNumber string          `json:"card_number" validate:"required"`
	CardType   string          `json:"card_type" validate:"required"`
	Machine    string          `json:"machine" validate:"required"`
	Vendor     string          `json:"vendor" validate:"required"`
	Model      string          `json:"model" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gte=0"`
	Type       model.SaleType  `json:"type" validate:"required,oneof=INSTANT EMI"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// normalize trims whitespace from the text fields.
func (in *Input) normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.CardNumber = strings.TrimSpace(in.CardNumber)
	in.CardType = strings.TrimSpace(in.CardType)
	in.Machine = strings.TrimSpace(in.Machine)
	in.Vendor = strings.TrimSpace(in.Vendor)
	in.Model = strings.TrimSpace(in.Model)
}

// check validates field shape, returning a *MalformedInputError for the
// first offending field.
func (in *Input) check() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &MalformedInputError{Field: "sale", Reason: err.Error()}
	}
	fe := verrs[0]
	return &MalformedInputError{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte":
		return "must not be negative"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "invalid"
	}
}

func (in *Input) sale() model.Sale {
	return model.Sale{
		ID:         in.ID,
		DateTime:   in.DateTime,
		CardNumber: in.CardNumber,
		CardType:   in.CardType,
		Machine:    in.Machine,
		Vendor:     in.Vendor,
		Model:      in.Model,
		Amount:     in.Amount,
		Type:       in.Type,
	}
}
