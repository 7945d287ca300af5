package retcode

import (
	"errors"
	"fmt"
	"sculink/internal/types"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RetcodeTestSuite struct {
	suite.Suite
}

func TestRetcodeTestSuite(t *testing.T) {
	suite.Run(t, new(RetcodeTestSuite))
}

func (s *RetcodeTestSuite) TestFixedValues() {
	s.Equal(Code(0), ExecutionOk)
	s.Equal(Code(-5001), RetrieveLogMessageFailed)
	s.Equal(Code(-5009), StartTransactionFailed)
	s.Equal(Code(-5011), FinishTransactionFailed)
	s.Equal(Code(-5035), UserIDNotManaged)
	s.Equal(Code(-5037), DisableSecureElementFailed)
	s.Equal(Code(-5039), InvalidConfig)
	s.Equal(Code(-5053), ClientIDRegistrationFailed)
	s.Equal(Code(-5059), GetSignatureAlgorithmFailed)
	s.Equal(Code(-4000), AuthenticationFailed)
	s.Equal(Code(-4001), UnblockFailed)
	s.Equal(Code(-3000), MissingParameter)
	s.Equal(Code(-3005), ConfigFileNotFound)
	s.Equal(Code(-3006), SeCommunicationFailed)
	s.Equal(Code(-3023), SeInSecureState)
	s.Equal(Code(-3100), Unknown)
	s.Equal(Code(-6000), UnsupportedPremiumFeature)
	s.Equal(Code(-6001), NotImplemented)
	s.False(Code(-5036).Known())
}

func (s *RetcodeTestSuite) TestString() {
	s.Equal("EXECUTION_OK (0)", ExecutionOk.String())
	s.Equal("ERROR_START_TRANSACTION_FAILED (-5009)", StartTransactionFailed.String())
	s.Equal("ERROR_SE_COMMUNICATION_FAILED (-3006)", SeCommunicationFailed.String())
	s.Equal("ERROR_UNRECOGNISED (-5036)", Code(-5036).String())
}

func (s *RetcodeTestSuite) TestFromError() {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, ExecutionOk},
		{types.ErrNotImplemented, NotImplemented},
		{types.Err(types.ErrDeviceNotConfigured, nil, "device %q", "x"), InvalidConfig},
		{types.Err(types.ErrRequestFailed, errors.New("dial tcp: refused"), ""), SeCommunicationFailed},
		{&types.StatusError{StatusCode: 500}, Unknown},
		{types.Err(types.ErrMalformedResponse, errors.New("eof"), ""), TseResponseDataInvalid},
		{types.ErrInvalidInput, ParameterMismatch},
		{types.ErrMissingParameter, MissingParameter},
		{types.ErrConfigFileNotFound, ConfigFileNotFound},
		{types.ErrChecksumMismatch, Unknown},
		{errors.New("boom"), Unknown},
	}
	for _, c := range cases {
		s.Equal(c.want, FromError(c.err), fmt.Sprint(c.err))
	}
}

func (s *RetcodeTestSuite) TestFromErrorOrUsesBusinessCode() {
	err := fmt.Errorf("finish: %w", &types.StatusError{StatusCode: 500, Detail: "boom"})
	s.Equal(FinishTransactionFailed, FromErrorOr(err, FinishTransactionFailed))
	s.Equal(SeCommunicationFailed, FromErrorOr(types.ErrRequestFailed, FinishTransactionFailed))
}
