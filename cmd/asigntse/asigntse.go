package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"unsafe"
)

//export at_getLifecycleState
func at_getLifecycleState(state *C.int32_t) C.int32_t {
	return at_getLifecycleStateWithTse(state, nil, 0)
}

//export at_getLifecycleStateWithTse
func at_getLifecycleStateWithTse(state *C.int32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().LifecycleState(ctx(), device(tseID, tseIDLength), i32(state)))
}

//export at_suspendSecureElement
func at_suspendSecureElement() C.int32_t {
	return at_suspendSecureElementWithTse(nil, 0)
}

//export at_suspendSecureElementWithTse
func at_suspendSecureElementWithTse(tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_suspendSecureElement", device(tseID, tseIDLength)))
}

//export at_unsuspendSecureElement
func at_unsuspendSecureElement() C.int32_t {
	return at_unsuspendSecureElementWithTse(nil, 0)
}

//export at_unsuspendSecureElementWithTse
func at_unsuspendSecureElementWithTse(tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_unsuspendSecureElement", device(tseID, tseIDLength)))
}

//export at_getCertificate
func at_getCertificate(cert **C.uint8_t, certLength *C.uint32_t) C.int32_t {
	return at_getCertificateWithTse(cert, certLength, nil, 0)
}

//export at_getCertificateWithTse
func at_getCertificateWithTse(cert **C.uint8_t, certLength *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().Certificate(ctx(), device(tseID, tseIDLength), buffer(cert, certLength)))
}

//export at_getPublicKey
func at_getPublicKey(pubKey **C.uint8_t, pubKeyLength *C.uint32_t) C.int32_t {
	return at_getPublicKeyWithTse(pubKey, pubKeyLength, nil, 0)
}

//export at_getPublicKeyWithTse
func at_getPublicKeyWithTse(pubKey **C.uint8_t, pubKeyLength *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().PublicKey(ctx(), device(tseID, tseIDLength), buffer(pubKey, pubKeyLength)))
}

//export at_getOpenTransactions
func at_getOpenTransactions(transactionNumbers **C.uint32_t, transactionNumbersLength *C.uint32_t) C.int32_t {
	return at_getOpenTransactionsWithTse(transactionNumbers, transactionNumbersLength, nil, 0)
}

//export at_getOpenTransactionsWithTse
func at_getOpenTransactionsWithTse(transactionNumbers **C.uint32_t, transactionNumbersLength *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().OpenTransactions(ctx(), device(tseID, tseIDLength),
		(*unsafe.Pointer)(unsafe.Pointer(transactionNumbers)), u32(transactionNumbersLength)))
}

//export at_getTransactionCounter
func at_getTransactionCounter(counter *C.uint32_t) C.int32_t {
	return at_getTransactionCounterWithTse(counter, nil, 0)
}

//export at_getTransactionCounterWithTse
func at_getTransactionCounterWithTse(counter *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_getTransactionCounter", device(tseID, tseIDLength)))
}

//export at_getSignatureCounter
func at_getSignatureCounter(counter *C.uint32_t) C.int32_t {
	return at_getSignatureCounterWithTse(counter, nil, 0)
}

//export at_getSignatureCounterWithTse
func at_getSignatureCounterWithTse(counter *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().SignatureCounter(ctx(), device(tseID, tseIDLength), u32(counter)))
}

//export at_getSignatureAlgorithm
func at_getSignatureAlgorithm(signatureAlgorithm **C.char, signatureAlgorithmLength *C.uint32_t) C.int32_t {
	return at_getSignatureAlgorithmWithTse(signatureAlgorithm, signatureAlgorithmLength, nil, 0)
}

//export at_getSignatureAlgorithmWithTse
func at_getSignatureAlgorithmWithTse(signatureAlgorithm **C.char, signatureAlgorithmLength *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().SignatureAlgorithm(ctx(), device(tseID, tseIDLength), buffer(signatureAlgorithm, signatureAlgorithmLength)))
}

//export at_getLogTimeFormat
func at_getLogTimeFormat(logTimeFormat **C.char, logTimeFormatLength *C.uint32_t) C.int32_t {
	return at_getLogTimeFormatWithTse(logTimeFormat, logTimeFormatLength, nil, 0)
}

//export at_getLogTimeFormatWithTse
func at_getLogTimeFormatWithTse(logTimeFormat **C.char, logTimeFormatLength *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().LogTimeFormat(ctx(), device(tseID, tseIDLength), buffer(logTimeFormat, logTimeFormatLength)))
}

//export at_getVersion
func at_getVersion(version **C.char, versionLength *C.uint32_t) C.int32_t {
	return rc(adapter().Version(buffer(version, versionLength)))
}

//export at_getServiceVersion
func at_getServiceVersion(version **C.char, versionLength *C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_getServiceVersion", ""))
}

//export at_getVersionDetails
func at_getVersionDetails(versionDetails **C.char, versionDetailsLength *C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_getVersionDetails", ""))
}

//export at_getSerialNumber
func at_getSerialNumber(serial **C.uint8_t, serialLength *C.uint32_t) C.int32_t {
	return at_getSerialNumberWithTse(serial, serialLength, nil, 0)
}

//export at_getSerialNumberWithTse
func at_getSerialNumberWithTse(serial **C.uint8_t, serialLength *C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().SerialNumber(ctx(), device(tseID, tseIDLength), buffer(serial, serialLength)))
}

//export at_preload
func at_preload() C.int32_t {
	return rc(adapter().Noop("at_preload"))
}

//export at_load
func at_load() C.int32_t {
	return rc(adapter().Noop("at_load"))
}

//export at_unload
func at_unload() C.int32_t {
	return rc(adapter().Noop("at_unload"))
}

//export at_verifyConfigEntry
func at_verifyConfigEntry() C.int32_t {
	return at_verifyConfigEntryWithTse(nil, 0)
}

//export at_verifyConfigEntryWithTse
func at_verifyConfigEntryWithTse(configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().VerifyConfigEntry(ctx(), device(configEntry, configEntryLength)))
}

//export at_registerClientId
func at_registerClientId(clientID *C.char, clientIDLength C.uint32_t) C.int32_t {
	return at_registerClientIdWithTse(clientID, clientIDLength, nil, 0)
}

//export at_registerClientIdWithTse
func at_registerClientIdWithTse(clientID *C.char, clientIDLength C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().RegisterClientID(ctx(), device(configEntry, configEntryLength), str(clientID, clientIDLength)))
}

//export at_getMaxLicencedClients
func at_getMaxLicencedClients(maxNumberClients *C.uint32_t) C.int32_t {
	return at_getMaxLicencedClientsWithTse(maxNumberClients, nil, 0)
}

//export at_getMaxLicencedClientsWithTse
func at_getMaxLicencedClientsWithTse(maxNumberClients *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().MaxLicensedClients(ctx(), device(configEntry, configEntryLength), u32(maxNumberClients)))
}

//export at_getRegisteredClients
func at_getRegisteredClients(clients **C.uint8_t, clientsLength *C.uint32_t) C.int32_t {
	return at_getRegisteredClientsWithTse(clients, clientsLength, nil, 0)
}

//export at_getRegisteredClientsWithTse
func at_getRegisteredClientsWithTse(clients **C.uint8_t, clientsLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().RegisteredClients(ctx(), device(configEntry, configEntryLength), buffer(clients, clientsLength)))
}

//export at_setPace
func at_setPace(paceUser *C.char, paceUserLength C.uint32_t, pacePin *C.char, pacePinLength C.uint32_t, paceAPIKey *C.char, paceAPIKeyLength C.uint32_t) C.int32_t {
	return at_setPaceWithTse(paceUser, paceUserLength, pacePin, pacePinLength, paceAPIKey, paceAPIKeyLength, nil, 0)
}

//export at_setPaceWithTse
func at_setPaceWithTse(paceUser *C.char, paceUserLength C.uint32_t, pacePin *C.char, pacePinLength C.uint32_t, paceAPIKey *C.char, paceAPIKeyLength C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_setPace", device(tseID, tseIDLength)))
}

//export at_addUserEntropy
func at_addUserEntropy(entropy *C.char, entropyLength C.uint32_t) C.int32_t {
	return at_addUserEntropyWithTse(entropy, entropyLength, nil, 0)
}

//export at_addUserEntropyWithTse
func at_addUserEntropyWithTse(entropy *C.char, entropyLength C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_addUserEntropy", device(tseID, tseIDLength)))
}

//export at_setPins
func at_setPins(adminPin *C.uint8_t, adminPinLength C.uint32_t, adminPuk *C.uint8_t, adminPukLength C.uint32_t) C.int32_t {
	return at_setPinsWithTse(adminPin, adminPinLength, adminPuk, adminPukLength, nil, 0)
}

//export at_setPinsWithTse
func at_setPinsWithTse(adminPin *C.uint8_t, adminPinLength C.uint32_t, adminPuk *C.uint8_t, adminPukLength C.uint32_t, tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_setPins", device(tseID, tseIDLength)))
}

//export at_checkCompatibility
func at_checkCompatibility(startIndex C.uint32_t, indexCnt C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_checkCompatibility", ""))
}

//export at_runSelfTests
func at_runSelfTests() C.int32_t {
	return at_runSelfTestsWithTse(nil, 0)
}

//export at_runSelfTestsWithTse
func at_runSelfTestsWithTse(tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().RunSelfTests(ctx(), device(tseID, tseIDLength)))
}

//export at_checkSecureState
func at_checkSecureState() C.int32_t {
	return at_checkSecureStateWithTse(nil, 0)
}

//export at_checkSecureStateWithTse
func at_checkSecureStateWithTse(tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_checkSecureState", device(tseID, tseIDLength)))
}

//export at_reloadSecureElement
func at_reloadSecureElement() C.int32_t {
	return at_reloadSecureElementWithTse(nil, 0)
}

//export at_reloadSecureElementWithTse
func at_reloadSecureElementWithTse(tseID *C.char, tseIDLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("at_reloadSecureElement", device(tseID, tseIDLength)))
}

//export at_install
func at_install() C.int32_t {
	return rc(adapter().NotImplemented("at_install", ""))
}

//export at_uninstall
func at_uninstall() C.int32_t {
	return rc(adapter().NotImplemented("at_uninstall", ""))
}
