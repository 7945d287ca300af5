package retcode

import "fmt"

// Code is the signed 32-bit value every exported function returns.
// Values are a fixed external contract.
type Code int32

const (
	ExecutionOk                          Code = 0
	RetrieveLogMessageFailed             Code = -5001
	StorageFailure                       Code = -5002
	UpdateTimeFailed                     Code = -5003
	ParameterMismatch                    Code = -5004
	IDNotFound                           Code = -5005
	TransactionNumberNotFound            Code = -5006
	NoDataAvailable                      Code = -5007
	TooManyRecords                       Code = -5008
	StartTransactionFailed               Code = -5009
	UpdateTransactionFailed              Code = -5010
	FinishTransactionFailed              Code = -5011
	RestoreFailed                        Code = -5012
	StoringInitDataFailed                Code = -5013
	ExportCertFailed                     Code = -5014
	NoLogMessage                         Code = -5015
	ReadingLogMessage                    Code = -5016
	NoTransaction                        Code = -5017
	SeApiNotInitialized                  Code = -5018
	TimeNotSet                           Code = -5019
	CertificateExpired                   Code = -5020
	SecureElementDisabled                Code = -5021
	UserNotAuthorized                    Code = -5022
	UserNotAuthenticated                 Code = -5023
	DescriptionNotSetByManufacturer      Code = -5024
	DescriptionSetByManufacturer         Code = -5025
	ExportSerialNumbersFailed            Code = -5026
	GetMaxNumberOfClientsFailed          Code = -5027
	GetCurrentNumberOfClientsFailed      Code = -5028
	GetMaxNumberTransactionsFailed       Code = -5029
	GetCurrentNumberOfTransactionsFailed Code = -5030
	GetSupportedUpdateVariantsFailed     Code = -5031
	DeleteStoredDataFailed               Code = -5032
	UnexportedStoredData                 Code = -5033
	SigningSystemOperationDataFailed     Code = -5034
	UserIDNotManaged                     Code = -5035
	DisableSecureElementFailed           Code = -5037
	ConfigValueNotFound                  Code = -5038
	InvalidConfig                        Code = -5039
	SuspendSecureElementFailed           Code = -5040
	UnsuspendSecureElementFailed         Code = -5041
	GetOpenTransactionsFailed            Code = -5042
	GetLifecycleStateFailed              Code = -5043
	GetTransactionCounterFailed          Code = -5044
	GetSignatureCounterFailed            Code = -5045
	GetTotalLogMemory                    Code = -5046
	GetLogTimeFormat                     Code = -5047
	ExportPublicKeyFailed                Code = -5048
	ExportCertificateFailed              Code = -5049
	TpmConnect                           Code = -5050
	InvalidClientID                      Code = -5051
	ClientIDNotRegistered                Code = -5052
	ClientIDRegistrationFailed           Code = -5053
	CannotRetrieveRegisteredClientIDs    Code = -5054
	CorruptedRegisteredClientIDs         Code = -5055
	CorruptedAppData                     Code = -5056
	SetPinsFailed                        Code = -5057
	SeAlreadyInitialized                 Code = -5058
	GetSignatureAlgorithmFailed          Code = -5059
	AuthenticationFailed                 Code = -4000
	UnblockFailed                        Code = -4001
	MissingParameter                     Code = -3000
	FunctionNotSupported                 Code = -3001
	IO                                   Code = -3002
	TseTimeout                           Code = -3003
	AllocationFailed                     Code = -3004
	ConfigFileNotFound                   Code = -3005
	SeCommunicationFailed                Code = -3006
	TseCommandDataInvalid                Code = -3007
	TseResponseDataInvalid               Code = -3008
	ErsAlreadyMapped                     Code = -3009
	NoErs                                Code = -3010
	TseUnknownError                      Code = -3011
	StreamWrite                          Code = -3012
	BufferTooSmall                       Code = -3013
	NoSuchKey                            Code = -3014
	NoKey                                Code = -3015
	SeApiDeactivated                     Code = -3016
	SeApiNotDeactivated                  Code = -3017
	AtLoadNotCalled                      Code = -3018
	SeIpcProtocolError                   Code = -3019
	AtSetPinsFailed                      Code = -3020
	SeNotProvisionedError                Code = -3021
	SeAlreadyProvisioned                 Code = -3022
	SeInSecureState                      Code = -3023
	Unknown                              Code = -3100
	UnsupportedPremiumFeature            Code = -6000
	NotImplemented                       Code = -6001
)

var names = map[Code]string{
	ExecutionOk:                          "EXECUTION_OK",
	RetrieveLogMessageFailed:             "ERROR_RETRIEVE_LOG_MESSAGE_FAILED",
	StorageFailure:                       "ERROR_STORAGE_FAILURE",
	UpdateTimeFailed:                     "ERROR_UPDATE_TIME_FAILED",
	ParameterMismatch:                    "ERROR_PARAMETER_MISMATCH",
	IDNotFound:                           "ERROR_ID_NOT_FOUND",
	TransactionNumberNotFound:            "ERROR_TRANSACTION_NUMBER_NOT_FOUND",
	NoDataAvailable:                      "ERROR_NO_DATA_AVAILABLE",
	TooManyRecords:                       "ERROR_TOO_MANY_RECORDS",
	StartTransactionFailed:               "ERROR_START_TRANSACTION_FAILED",
	UpdateTransactionFailed:              "ERROR_UPDATE_TRANSACTION_FAILED",
	FinishTransactionFailed:              "ERROR_FINISH_TRANSACTION_FAILED",
	RestoreFailed:                        "ERROR_RESTORE_FAILED",
	StoringInitDataFailed:                "ERROR_STORING_INIT_DATA_FAILED",
	ExportCertFailed:                     "ERROR_EXPORT_CERT_FAILED",
	NoLogMessage:                         "ERROR_NO_LOG_MESSAGE",
	ReadingLogMessage:                    "ERROR_READING_LOG_MESSAGE",
	NoTransaction:                        "ERROR_NO_TRANSACTION",
	SeApiNotInitialized:                  "ERROR_SE_API_NOT_INITIALIZED",
	TimeNotSet:                           "ERROR_TIME_NOT_SET",
	CertificateExpired:                   "ERROR_CERTIFICATE_EXPIRED",
	SecureElementDisabled:                "ERROR_SECURE_ELEMENT_DISABLED",
	UserNotAuthorized:                    "ERROR_USER_NOT_AUTHORIZED",
	UserNotAuthenticated:                 "ERROR_USER_NOT_AUTHENTICATED",
	DescriptionNotSetByManufacturer:      "ERROR_DESCRIPTION_NOT_SET_BY_MANUFACTURER",
	DescriptionSetByManufacturer:         "ERROR_DESCRIPTION_SET_BY_MANUFACTURER",
	ExportSerialNumbersFailed:            "ERROR_EXPORT_SERIAL_NUMBERS_FAILED",
	GetMaxNumberOfClientsFailed:          "ERROR_GET_MAX_NUMBER_OF_CLIENTS_FAILED",
	GetCurrentNumberOfClientsFailed:      "ERROR_GET_CURRENT_NUMBER_OF_CLIENTS_FAILED",
	GetMaxNumberTransactionsFailed:       "ERROR_GET_MAX_NUMBER_TRANSACTIONS_FAILED",
	GetCurrentNumberOfTransactionsFailed: "ERROR_GET_CURRENT_NUMBER_OF_TRANSACTIONS_FAILED",
	GetSupportedUpdateVariantsFailed:     "ERROR_GET_SUPPORTED_UPDATE_VARIANTS_FAILED",
	DeleteStoredDataFailed:               "ERROR_DELETE_STORED_DATA_FAILED",
	UnexportedStoredData:                 "ERROR_UNEXPORTED_STORED_DATA",
	SigningSystemOperationDataFailed:     "ERROR_SIGNING_SYSTEM_OPERATION_DATA_FAILED",
	UserIDNotManaged:                     "ERROR_USER_ID_NOT_MANAGED",
	DisableSecureElementFailed:           "ERROR_DISABLE_SECURE_ELEMENT_FAILED",
	ConfigValueNotFound:                  "ERROR_CONFIG_VALUE_NOT_FOUND",
	InvalidConfig:                        "ERROR_INVALID_CONFIG",
	SuspendSecureElementFailed:           "ERROR_SUSPEND_SECURE_ELEMENT_FAILED",
	UnsuspendSecureElementFailed:         "ERROR_UNSUSPEND_SECURE_ELEMENT_FAILED",
	GetOpenTransactionsFailed:            "ERROR_GET_OPEN_TRANSACTIONS_FAILED",
	GetLifecycleStateFailed:              "ERROR_GET_LIFECYCLE_STATE_FAILED",
	GetTransactionCounterFailed:          "ERROR_GET_TRANSACTION_COUNTER_FAILED",
	GetSignatureCounterFailed:            "ERROR_GET_SIGNATURE_COUNTER_FAILED",
	GetTotalLogMemory:                    "ERROR_GET_TOTAL_LOG_MEMORY",
	GetLogTimeFormat:                     "ERROR_GET_LOG_TIME_FORMAT",
	ExportPublicKeyFailed:                "ERROR_EXPORT_PUBLIC_KEY_FAILED",
	ExportCertificateFailed:              "ERROR_EXPORT_CERTIFICATE_FAILED",
	TpmConnect:                           "ERROR_TPM_CONNECT",
	InvalidClientID:                      "ERROR_INVALID_CLIENT_ID",
	ClientIDNotRegistered:                "ERROR_CLIENT_ID_NOT_REGISTERED",
	ClientIDRegistrationFailed:           "ERROR_CLIENT_ID_REGISTRATION_FAILED",
	CannotRetrieveRegisteredClientIDs:    "ERROR_CANNOT_RETRIEVE_REGISTERED_CLIENT_IDS",
	CorruptedRegisteredClientIDs:         "ERROR_CORRUPTED_REGISTERED_CLIENT_IDS",
	CorruptedAppData:                     "ERROR_CORRUPTED_APP_DATA",
	SetPinsFailed:                        "ERROR_SET_PINS_FAILED",
	SeAlreadyInitialized:                 "ERROR_SE_ALREADY_INITIALIZED",
	GetSignatureAlgorithmFailed:          "ERROR_GET_SIGNATURE_ALGORITHM_FAILED",
	AuthenticationFailed:                 "ERROR_AUTHENTICATION_FAILED",
	UnblockFailed:                        "ERROR_UNBLOCK_FAILED",
	MissingParameter:                     "ERROR_MISSING_PARAMETER",
	FunctionNotSupported:                 "ERROR_FUNCTION_NOT_SUPPORTED",
	IO:                                   "ERROR_IO",
	TseTimeout:                           "ERROR_TSE_TIMEOUT",
	AllocationFailed:                     "ERROR_ALLOCATION_FAILED",
	ConfigFileNotFound:                   "ERROR_CONFIG_FILE_NOT_FOUND",
	SeCommunicationFailed:                "ERROR_SE_COMMUNICATION_FAILED",
	TseCommandDataInvalid:                "ERROR_TSE_COMMAND_DATA_INVALID",
	TseResponseDataInvalid:               "ERROR_TSE_RESPONSE_DATA_INVALID",
	ErsAlreadyMapped:                     "ERROR_ERS_ALREADY_MAPPED",
	NoErs:                                "ERROR_NO_ERS",
	TseUnknownError:                      "ERROR_TSE_UNKNOWN_ERROR",
	StreamWrite:                          "ERROR_STREAM_WRITE",
	BufferTooSmall:                       "ERROR_BUFFER_TOO_SMALL",
	NoSuchKey:                            "ERROR_NO_SUCH_KEY",
	NoKey:                                "ERROR_NO_KEY",
	SeApiDeactivated:                     "ERROR_SE_API_DEACTIVATED",
	SeApiNotDeactivated:                  "ERROR_SE_API_NOT_DEACTIVATED",
	AtLoadNotCalled:                      "ERROR_AT_LOAD_NOT_CALLED",
	SeIpcProtocolError:                   "ERROR_SE_IPC_PROTOCOL_ERROR",
	AtSetPinsFailed:                      "ERROR_AT_SET_PINS_FAILED",
	SeNotProvisionedError:                "ERROR_SE_NOT_PROVISIONED_ERROR",
	SeAlreadyProvisioned:                 "ERROR_SE_ALREADY_PROVISIONED",
	SeInSecureState:                      "ERROR_SE_IN_SECURE_STATE",
	Unknown:                              "ERROR_UNKNOWN",
	UnsupportedPremiumFeature:            "ERROR_UNSUPPORTED_PREMIUM_FEATURE",
	NotImplemented:                       "ERROR_NOT_IMPLEMENTED",
}

// String renders the code as `NAME (value)`.
func (c Code) String() string {
	name, ok := names[c]
	if !ok {
		name = "ERROR_UNRECOGNISED"
	}
	return fmt.Sprintf("%s (%d)", name, int32(c))
}

// Known reports whether c is part of the table.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}
