package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

//export cfgSetConfigFile
func cfgSetConfigFile(path *C.char, pathLength C.uint32_t) C.int32_t {
	return rc(adapter().SetConfigFile(str(path, pathLength)))
}

//export cfgTseAdd
func cfgTseAdd(
	tseID *C.char, tseIDLength C.uint32_t,
	tseType C.uint32_t,
	connParam *C.char, connParamLength C.uint32_t,
	atrustTseID *C.char, atrustTseIDLength C.uint32_t,
	atrustAPIKey *C.char, atrustAPIKeyLength C.uint32_t,
	timeAdminID *C.char, timeAdminIDLength C.uint32_t,
	timeAdminPwd *C.char, timeAdminPwdLength C.uint32_t,
) C.int32_t {
	return rc(adapter().NotImplemented("cfgTseAdd", str(tseID, tseIDLength)))
}

//export cfgTseAddPremium
func cfgTseAddPremium(
	tseID *C.char, tseIDLength C.uint32_t,
	tseType C.uint32_t,
	connParam *C.char, connParamLength C.uint32_t,
	atrustTseID *C.char, atrustTseIDLength C.uint32_t,
	atrustAPIKey *C.char, atrustAPIKeyLength C.uint32_t,
	timeAdminID *C.char, timeAdminIDLength C.uint32_t,
	timeAdminPwd *C.char, timeAdminPwdLength C.uint32_t,
	licenceKey *C.char, licenceKeyLength C.uint32_t,
) C.int32_t {
	return rc(adapter().NotImplemented("cfgTseAddPremium", str(tseID, tseIDLength)))
}

//export cfgTseRemove
func cfgTseRemove(tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("cfgTseRemove", str(tseID, tseIDLength)))
}

//export cfgSetLoggingEnabled
func cfgSetLoggingEnabled(enabled C.bool) C.int32_t {
	return rc(adapter().SetLoggingEnabled(bool(enabled)))
}

//export cfgSetLoggingStderr
func cfgSetLoggingStderr(enabled C.bool) C.int32_t {
	return rc(adapter().SetLoggingStderr(bool(enabled)))
}

//export cfgSetLoggingFile
func cfgSetLoggingFile(enabled C.bool) C.int32_t {
	return rc(adapter().SetLoggingFile(bool(enabled)))
}

//export cfgSetLogDir
func cfgSetLogDir(path *C.char, pathLength C.uint32_t) C.int32_t {
	return rc(adapter().SetLogDir(str(path, pathLength)))
}

//export cfgSetLogLevel
func cfgSetLogLevel(logLevel *C.char, logLevelLength C.uint32_t) C.int32_t {
	return rc(adapter().SetLogLevel(str(logLevel, logLevelLength)))
}

//export cfgSetLogAppend
func cfgSetLogAppend(enabled C.bool) C.int32_t {
	return rc(adapter().SetLogAppend(bool(enabled)))
}

//export cfgSetLogColors
func cfgSetLogColors(enabled C.bool) C.int32_t {
	return rc(adapter().SetLogColors(bool(enabled)))
}

//export cfgSetLogDetails
func cfgSetLogDetails(enabled C.bool) C.int32_t {
	return rc(adapter().SetLogDetails(bool(enabled)))
}

//export cfgSetLogStderrColors
func cfgSetLogStderrColors(enabled C.bool) C.int32_t {
	return rc(adapter().SetLogStderrColors(bool(enabled)))
}

//export cfgSetHttpProxy
func cfgSetHttpProxy(proxyURL *C.char, proxyURLLength C.uint32_t) C.int32_t {
	return rc(adapter().SetHTTPProxy(str(proxyURL, proxyURLLength)))
}

//export cfgSetHttpProxyWithUsernameAndPassword
func cfgSetHttpProxyWithUsernameAndPassword(proxyURL *C.char, proxyURLLength C.uint32_t, proxyUsername *C.char, proxyUsernameLength C.uint32_t, proxyPassword *C.char, proxyPasswordLength C.uint32_t) C.int32_t {
	return rc(adapter().SetHTTPProxyWithCredentials(
		str(proxyURL, proxyURLLength),
		str(proxyUsername, proxyUsernameLength),
		str(proxyPassword, proxyPasswordLength),
	))
}

//export cfgSetTimeout
func cfgSetTimeout(timeout C.uint64_t) C.int32_t {
	return rc(adapter().SetTimeout(uint64(timeout)))
}

//export cfgSetRetries
func cfgSetRetries(retries C.uint64_t) C.int32_t {
	return rc(adapter().SetRetries(uint64(retries)))
}

//export cfgSetUploadMessageInterval
func cfgSetUploadMessageInterval(interval C.uint32_t) C.int32_t {
	return rc(adapter().SetUploadMessageInterval(uint32(interval)))
}

//export cfgSetMaxAuditLogSize
func cfgSetMaxAuditLogSize(maximum C.uint32_t) C.int32_t {
	return rc(adapter().SetMaxAuditLogSize(uint32(maximum)))
}
