package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Source", "is required")
	ve.AddFieldError("LogLevel", "must be one of: debug, info")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: LogLevel: must be one of: debug, info; Source: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()
	s.Assert().False(ve.HasErrors())
	s.Assert().Equal("validation failed", ve.Error())
	s.Assert().Nil(ve.ToError())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Source", "is required").
		Fieldf("Seed", "must not be %d", -1).
		RequiredField("Clock")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Clock: is required")
	s.Assert().Contains(err.Error(), "Seed: must not be -1")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"text", "json"}

	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"text", "text", false},
		{"json", "json", false},
		{"yaml", "yaml", true},
		{"empty", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateEnum("Output", tc.value, allowed, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().Error(err)
				s.Assert().Contains(err.Error(), "must be one of: text, json")
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}
