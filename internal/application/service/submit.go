package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/domain"
)

var ErrInvalidAddress = errors.New("invalid address")

// ResidentialInput is the body of an address submission.
type ResidentialInput struct {
	Postcode       string `json:"postcode"`
	BuildingNumber string `json:"buildingNumber" validate:"required"`
	StreetAddress  string `json:"streetAddress" validate:"required"`
	Town           string `json:"town" validate:"required"`
	FullAddress    string `json:"fullAddress"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SubmitResidential validates and stores a user-submitted address.
// Missing required fields yield an error wrapping ErrInvalidAddress and nothing is stored.
func (s *Service) SubmitResidential(ctx context.Context, in ResidentialInput, submittedBy string) (*domain.ResidentialAddress, error) {
	in.Postcode = strings.ToUpper(strings.TrimSpace(in.Postcode))
	in.BuildingNumber = strings.TrimSpace(in.BuildingNumber)
	in.StreetAddress = strings.TrimSpace(in.StreetAddress)
	in.Town = strings.TrimSpace(in.Town)
	in.FullAddress = strings.TrimSpace(in.FullAddress)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidAddress, strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	if in.FullAddress == "" {
		in.FullAddress = formatFullAddress(in)
	}

	addr := &domain.ResidentialAddress{
		ID:             uuid.NewString(),
		Postcode:       in.Postcode,
		BuildingNumber: in.BuildingNumber,
		StreetAddress:  in.StreetAddress,
		Town:           in.Town,
		FullAddress:    in.FullAddress,
		SubmittedBy:    submittedBy,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.residential.Insert(ctx, addr); err != nil {
		s.logger.Error("Error while inserting residential address", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Residential address stored",
		zap.String("id", addr.ID),
		zap.String("postcode", addr.Postcode),
		zap.String("submitted_by", submittedBy),
	)
	return addr, nil
}

// formatFullAddress renders "{building} {street}, {town}, {postcode}" without empty parts.
func formatFullAddress(in ResidentialInput) string {
	line := strings.TrimSpace(in.BuildingNumber + " " + in.StreetAddress)
	parts := make([]string, 0, 3)
	for _, p := range []string{line, in.Town, in.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
