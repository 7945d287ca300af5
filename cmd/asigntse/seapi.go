package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"sculink/internal/capi"
	"unsafe"
)

//export initializeDescriptionNotSet
func initializeDescriptionNotSet(description *C.char, descriptionLength C.uint32_t) C.int32_t {
	return initializeDescriptionNotSetWithTse(description, descriptionLength, nil, 0)
}

//export initializeDescriptionNotSetWithTse
func initializeDescriptionNotSetWithTse(description *C.char, descriptionLength C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("initializeDescriptionNotSet", device(configEntry, configEntryLength)))
}

//export initializeDescriptionSet
func initializeDescriptionSet() C.int32_t {
	return initializeDescriptionSetWithTse(nil, 0)
}

//export initializeDescriptionSetWithTse
func initializeDescriptionSetWithTse(configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().InitializeDescriptionSet(ctx(), device(configEntry, configEntryLength)))
}

//export updateTime
func updateTime(newDateTime C.int64_t) C.int32_t {
	return updateTimeWithTse(newDateTime, nil, 0)
}

//export updateTimeWithTse
func updateTimeWithTse(newDateTime C.int64_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().UpdateTime(device(configEntry, configEntryLength), int64(newDateTime)))
}

//export updateTimeWithTimeSync
func updateTimeWithTimeSync() C.int32_t {
	return updateTimeWithTimeSyncWithTse(nil, 0)
}

//export updateTimeWithTimeSyncWithTse
func updateTimeWithTimeSyncWithTse(configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().UpdateTimeWithTimeSync(ctx(), device(configEntry, configEntryLength)))
}

//export disableSecureElement
func disableSecureElement() C.int32_t {
	return disableSecureElementWithTse(nil, 0)
}

//export disableSecureElementWithTse
func disableSecureElementWithTse(configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().DisableSecureElement(ctx(), device(configEntry, configEntryLength)))
}

//export startTransaction
func startTransaction(
	clientID *C.char, clientIDLength C.uint32_t,
	processData *C.uint8_t, processDataLength C.uint32_t,
	processType *C.char, processTypeLength C.uint32_t,
	additionalData *C.uint8_t, additionalDataLength C.uint32_t,
	transactionNumber *C.uint32_t,
	logTime *C.int64_t,
	serialNumber **C.uint8_t, serialNumberLength *C.uint32_t,
	signatureCounter *C.uint32_t,
	signatureValue **C.uint8_t, signatureValueLength *C.uint32_t,
) C.int32_t {
	return startTransactionWithTse(clientID, clientIDLength, processData, processDataLength,
		processType, processTypeLength, additionalData, additionalDataLength,
		transactionNumber, logTime, serialNumber, serialNumberLength,
		signatureCounter, signatureValue, signatureValueLength, nil, 0)
}

//export startTransactionWithTse
func startTransactionWithTse(
	clientID *C.char, clientIDLength C.uint32_t,
	processData *C.uint8_t, processDataLength C.uint32_t,
	processType *C.char, processTypeLength C.uint32_t,
	additionalData *C.uint8_t, additionalDataLength C.uint32_t,
	transactionNumber *C.uint32_t,
	logTime *C.int64_t,
	serialNumber **C.uint8_t, serialNumberLength *C.uint32_t,
	signatureCounter *C.uint32_t,
	signatureValue **C.uint8_t, signatureValueLength *C.uint32_t,
	configEntry *C.char, configEntryLength C.uint32_t,
) C.int32_t {
	return rc(adapter().StartTransaction(ctx(), device(configEntry, configEntryLength), capi.TransactionInput{
		ClientID:       str(clientID, clientIDLength),
		ProcessType:    str(processType, processTypeLength),
		ProcessData:    data(processData, processDataLength),
		AdditionalData: data(additionalData, additionalDataLength),
	}, capi.TransactionOutput{
		TransactionNumber: u32(transactionNumber),
		LogTime:           i64(logTime),
		SerialNumber:      buffer(serialNumber, serialNumberLength),
		SignatureCounter:  u32(signatureCounter),
		Signature:         buffer(signatureValue, signatureValueLength),
	}))
}

//export updateTransaction
func updateTransaction(
	clientID *C.char, clientIDLength C.uint32_t,
	transactionNumber C.uint32_t,
	processData *C.uint8_t, processDataLength C.uint32_t,
	processType *C.char, processTypeLength C.uint32_t,
	logTime *C.int64_t,
	signatureValue **C.uint8_t, signatureValueLength *C.uint32_t,
	signatureCounter *C.uint32_t,
) C.int32_t {
	return updateTransactionWithTse(clientID, clientIDLength, transactionNumber,
		processData, processDataLength, processType, processTypeLength,
		logTime, signatureValue, signatureValueLength, signatureCounter, nil, 0)
}

//export updateTransactionWithTse
func updateTransactionWithTse(
	clientID *C.char, clientIDLength C.uint32_t,
	transactionNumber C.uint32_t,
	processData *C.uint8_t, processDataLength C.uint32_t,
	processType *C.char, processTypeLength C.uint32_t,
	logTime *C.int64_t,
	signatureValue **C.uint8_t, signatureValueLength *C.uint32_t,
	signatureCounter *C.uint32_t,
	configEntry *C.char, configEntryLength C.uint32_t,
) C.int32_t {
	return rc(adapter().UpdateTransaction(ctx(), device(configEntry, configEntryLength), capi.TransactionInput{
		ClientID:          str(clientID, clientIDLength),
		TransactionNumber: uint32(transactionNumber),
		ProcessType:       str(processType, processTypeLength),
		ProcessData:       data(processData, processDataLength),
	}, capi.TransactionOutput{
		LogTime:          i64(logTime),
		SignatureCounter: u32(signatureCounter),
		Signature:        buffer(signatureValue, signatureValueLength),
	}))
}

//export finishTransaction
func finishTransaction(
	clientID *C.char, clientIDLength C.uint32_t,
	transactionNumber C.uint32_t,
	processData *C.uint8_t, processDataLength C.uint32_t,
	processType *C.char, processTypeLength C.uint32_t,
	additionalData *C.uint8_t, additionalDataLength C.uint32_t,
	logTime *C.int64_t,
	signatureValue **C.uint8_t, signatureValueLength *C.uint32_t,
	signatureCounter *C.uint32_t,
) C.int32_t {
	return finishTransactionWithTse(clientID, clientIDLength, transactionNumber,
		processData, processDataLength, processType, processTypeLength,
		additionalData, additionalDataLength,
		logTime, signatureValue, signatureValueLength, signatureCounter, nil, 0)
}

//export finishTransactionWithTse
func finishTransactionWithTse(
	clientID *C.char, clientIDLength C.uint32_t,
	transactionNumber C.uint32_t,
	processData *C.uint8_t, processDataLength C.uint32_t,
	processType *C.char, processTypeLength C.uint32_t,
	additionalData *C.uint8_t, additionalDataLength C.uint32_t,
	logTime *C.int64_t,
	signatureValue **C.uint8_t, signatureValueLength *C.uint32_t,
	signatureCounter *C.uint32_t,
	configEntry *C.char, configEntryLength C.uint32_t,
) C.int32_t {
	return rc(adapter().FinishTransaction(ctx(), device(configEntry, configEntryLength), capi.TransactionInput{
		ClientID:          str(clientID, clientIDLength),
		TransactionNumber: uint32(transactionNumber),
		ProcessType:       str(processType, processTypeLength),
		ProcessData:       data(processData, processDataLength),
		AdditionalData:    data(additionalData, additionalDataLength),
	}, capi.TransactionOutput{
		LogTime:          i64(logTime),
		SignatureCounter: u32(signatureCounter),
		Signature:        buffer(signatureValue, signatureValueLength),
	}))
}

//export exportData
func exportData(maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataWithTse(maximumNumberRecords, exportedData, exportedDataLength, nil, 0)
}

//export exportDataWithTse
func exportDataWithTse(maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().Export(ctx(), "exportData", device(configEntry, configEntryLength),
		capi.ExportAll(""), buffer(exportedData, exportedDataLength)))
}

//export exportDataWithClientId
func exportDataWithClientId(clientID *C.char, clientIDLength C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataWithClientIdWithTse(clientID, clientIDLength, exportedData, exportedDataLength, nil, 0)
}

//export exportDataWithClientIdWithTse
func exportDataWithClientIdWithTse(clientID *C.char, clientIDLength C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().Export(ctx(), "exportDataWithClientId", device(configEntry, configEntryLength),
		capi.ExportAll(str(clientID, clientIDLength)), buffer(exportedData, exportedDataLength)))
}

//export exportDataFilteredByTransactionNumber
func exportDataFilteredByTransactionNumber(transactionNumber C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataFilteredByTransactionNumberWithTse(transactionNumber, exportedData, exportedDataLength, nil, 0)
}

//export exportDataFilteredByTransactionNumberWithTse
func exportDataFilteredByTransactionNumberWithTse(transactionNumber C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	n := uint32(transactionNumber)
	return rc(adapter().Export(ctx(), "exportDataFilteredByTransactionNumber", device(configEntry, configEntryLength),
		capi.ExportTransactions(n, n, ""), buffer(exportedData, exportedDataLength)))
}

//export exportDataFilteredByTransactionNumberAndClientId
func exportDataFilteredByTransactionNumberAndClientId(transactionNumber C.uint32_t, clientID *C.char, clientIDLength C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataFilteredByTransactionNumberAndClientIdWithTse(transactionNumber, clientID, clientIDLength, exportedData, exportedDataLength, nil, 0)
}

//export exportDataFilteredByTransactionNumberAndClientIdWithTse
func exportDataFilteredByTransactionNumberAndClientIdWithTse(transactionNumber C.uint32_t, clientID *C.char, clientIDLength C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	n := uint32(transactionNumber)
	return rc(adapter().Export(ctx(), "exportDataFilteredByTransactionNumberAndClientId", device(configEntry, configEntryLength),
		capi.ExportTransactions(n, n, str(clientID, clientIDLength)), buffer(exportedData, exportedDataLength)))
}

//export exportDataFilteredByTransactionNumberInterval
func exportDataFilteredByTransactionNumberInterval(startTransactionNumber, endTransactionNumber, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataFilteredByTransactionNumberIntervalWithTse(startTransactionNumber, endTransactionNumber, maximumNumberRecords, exportedData, exportedDataLength, nil, 0)
}

//export exportDataFilteredByTransactionNumberIntervalWithTse
func exportDataFilteredByTransactionNumberIntervalWithTse(startTransactionNumber, endTransactionNumber, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().Export(ctx(), "exportDataFilteredByTransactionNumberInterval", device(configEntry, configEntryLength),
		capi.ExportTransactions(uint32(startTransactionNumber), uint32(endTransactionNumber), ""), buffer(exportedData, exportedDataLength)))
}

//export exportDataFilteredByTransactionNumberIntervalAndClientId
func exportDataFilteredByTransactionNumberIntervalAndClientId(startTransactionNumber, endTransactionNumber C.uint32_t, clientID *C.char, clientIDLength C.uint32_t, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataFilteredByTransactionNumberIntervalAndClientIdWithTse(startTransactionNumber, endTransactionNumber, clientID, clientIDLength, maximumNumberRecords, exportedData, exportedDataLength, nil, 0)
}

//export exportDataFilteredByTransactionNumberIntervalAndClientIdWithTse
func exportDataFilteredByTransactionNumberIntervalAndClientIdWithTse(startTransactionNumber, endTransactionNumber C.uint32_t, clientID *C.char, clientIDLength C.uint32_t, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().Export(ctx(), "exportDataFilteredByTransactionNumberIntervalAndClientId", device(configEntry, configEntryLength),
		capi.ExportTransactions(uint32(startTransactionNumber), uint32(endTransactionNumber), str(clientID, clientIDLength)), buffer(exportedData, exportedDataLength)))
}

//export exportDataFilteredByPeriodOfTime
func exportDataFilteredByPeriodOfTime(startDate, endDate C.int64_t, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataFilteredByPeriodOfTimeWithTse(startDate, endDate, maximumNumberRecords, exportedData, exportedDataLength, nil, 0)
}

//export exportDataFilteredByPeriodOfTimeWithTse
func exportDataFilteredByPeriodOfTimeWithTse(startDate, endDate C.int64_t, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().Export(ctx(), "exportDataFilteredByPeriodOfTime", device(configEntry, configEntryLength),
		capi.ExportPeriod(int64(startDate), int64(endDate), ""), buffer(exportedData, exportedDataLength)))
}

//export exportDataFilteredByPeriodOfTimeAndClientId
func exportDataFilteredByPeriodOfTimeAndClientId(startDate, endDate C.int64_t, clientID *C.char, clientIDLength C.uint32_t, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t) C.int32_t {
	return exportDataFilteredByPeriodOfTimeAndClientIdWithTse(startDate, endDate, clientID, clientIDLength, maximumNumberRecords, exportedData, exportedDataLength, nil, 0)
}

//export exportDataFilteredByPeriodOfTimeAndClientIdWithTse
func exportDataFilteredByPeriodOfTimeAndClientIdWithTse(startDate, endDate C.int64_t, clientID *C.char, clientIDLength C.uint32_t, maximumNumberRecords C.uint32_t, exportedData **C.uint8_t, exportedDataLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().Export(ctx(), "exportDataFilteredByPeriodOfTimeAndClientId", device(configEntry, configEntryLength),
		capi.ExportPeriod(int64(startDate), int64(endDate), str(clientID, clientIDLength)), buffer(exportedData, exportedDataLength)))
}

//export exportCertificates
func exportCertificates(certificates **C.uint8_t, certificatesLength *C.uint32_t) C.int32_t {
	return exportCertificatesWithTse(certificates, certificatesLength, nil, 0)
}

//export exportCertificatesWithTse
func exportCertificatesWithTse(certificates **C.uint8_t, certificatesLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().ExportCertificates(ctx(), device(configEntry, configEntryLength), buffer(certificates, certificatesLength)))
}

//export restoreFromBackup
func restoreFromBackup(restoreData *C.uint8_t, restoreDataLength C.uint32_t) C.int32_t {
	return restoreFromBackupWithTse(restoreData, restoreDataLength, nil, 0)
}

//export restoreFromBackupWithTse
func restoreFromBackupWithTse(restoreData *C.uint8_t, restoreDataLength C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("restoreFromBackup", device(configEntry, configEntryLength)))
}

//export readLogMessage
func readLogMessage(logMessage **C.uint8_t, logMessageLength *C.uint32_t) C.int32_t {
	return readLogMessageWithTse(logMessage, logMessageLength, nil, 0)
}

//export readLogMessageWithTse
func readLogMessageWithTse(logMessage **C.uint8_t, logMessageLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("readLogMessage", device(configEntry, configEntryLength)))
}

//export exportSerialNumbers
func exportSerialNumbers(serialNumbers **C.uint8_t, serialNumbersLength *C.uint32_t) C.int32_t {
	return exportSerialNumbersWithTse(serialNumbers, serialNumbersLength, nil, 0)
}

//export exportSerialNumbersWithTse
func exportSerialNumbersWithTse(serialNumbers **C.uint8_t, serialNumbersLength *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().ExportSerialNumbers(ctx(), device(configEntry, configEntryLength), buffer(serialNumbers, serialNumbersLength)))
}

//export getMaxNumberOfClients
func getMaxNumberOfClients(maxNumberClients *C.uint32_t) C.int32_t {
	return getMaxNumberOfClientsWithTse(maxNumberClients, nil, 0)
}

//export getMaxNumberOfClientsWithTse
func getMaxNumberOfClientsWithTse(maxNumberClients *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().MaxNumberOfClients(ctx(), device(configEntry, configEntryLength), u32(maxNumberClients)))
}

//export getCurrentNumberOfClients
func getCurrentNumberOfClients(currentNumberClients *C.uint32_t) C.int32_t {
	return getCurrentNumberOfClientsWithTse(currentNumberClients, nil, 0)
}

//export getCurrentNumberOfClientsWithTse
func getCurrentNumberOfClientsWithTse(currentNumberClients *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().CurrentNumberOfClients(ctx(), device(configEntry, configEntryLength), u32(currentNumberClients)))
}

//export getMaxNumberOfTransactions
func getMaxNumberOfTransactions(maxNumberTransactions *C.uint32_t) C.int32_t {
	return getMaxNumberOfTransactionsWithTse(maxNumberTransactions, nil, 0)
}

//export getMaxNumberOfTransactionsWithTse
func getMaxNumberOfTransactionsWithTse(maxNumberTransactions *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().MaxNumberOfTransactions(ctx(), device(configEntry, configEntryLength), u32(maxNumberTransactions)))
}

//export getCurrentNumberOfTransactions
func getCurrentNumberOfTransactions(currentNumberTransactions *C.uint32_t) C.int32_t {
	return getCurrentNumberOfTransactionsWithTse(currentNumberTransactions, nil, 0)
}

//export getCurrentNumberOfTransactionsWithTse
func getCurrentNumberOfTransactionsWithTse(currentNumberTransactions *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().CurrentNumberOfTransactions(ctx(), device(configEntry, configEntryLength), u32(currentNumberTransactions)))
}

//export getSupportedTransactionUpdateVariants
func getSupportedTransactionUpdateVariants(supportedUpdateVariants *C.uint32_t) C.int32_t {
	return getSupportedTransactionUpdateVariantsWithTse(supportedUpdateVariants, nil, 0)
}

//export getSupportedTransactionUpdateVariantsWithTse
func getSupportedTransactionUpdateVariantsWithTse(supportedUpdateVariants *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().SupportedUpdateVariants(device(configEntry, configEntryLength), u32(supportedUpdateVariants)))
}

//export deleteStoredData
func deleteStoredData() C.int32_t {
	return deleteStoredDataWithTse(nil, 0)
}

//export deleteStoredDataWithTse
func deleteStoredDataWithTse(configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().NotImplemented("deleteStoredData", device(configEntry, configEntryLength)))
}

//export authenticateUser
func authenticateUser(userID *C.char, userIDLength C.uint32_t, pin *C.uint8_t, pinLength C.uint32_t, authenticationResult *C.int32_t, remainingRetries *C.int16_t) C.int32_t {
	return authenticateUserWithTse(userID, userIDLength, pin, pinLength, authenticationResult, remainingRetries, nil, 0)
}

//export authenticateUserWithTse
func authenticateUserWithTse(userID *C.char, userIDLength C.uint32_t, pin *C.uint8_t, pinLength C.uint32_t, authenticationResult *C.int32_t, remainingRetries *C.int16_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().AuthenticateUser(device(configEntry, configEntryLength), str(userID, userIDLength),
		i32(authenticationResult), (*int16)(unsafe.Pointer(remainingRetries))))
}

//export logOut
func logOut(userID *C.char, userIDLength C.uint32_t) C.int32_t {
	return logOutWithTse(userID, userIDLength, nil, 0)
}

//export logOutWithTse
func logOutWithTse(userID *C.char, userIDLength C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().LogOut(device(configEntry, configEntryLength), str(userID, userIDLength)))
}

//export unblockUser
func unblockUser(userID *C.char, userIDLength C.uint32_t, puk *C.char, pukLength C.uint32_t, newPin *C.char, newPinLength C.uint32_t, unblockResult *C.uint32_t) C.int32_t {
	return unblockUserWithTse(userID, userIDLength, puk, pukLength, newPin, newPinLength, unblockResult, nil, 0)
}

//export unblockUserWithTse
func unblockUserWithTse(userID *C.char, userIDLength C.uint32_t, puk *C.char, pukLength C.uint32_t, newPin *C.char, newPinLength C.uint32_t, unblockResult *C.uint32_t, configEntry *C.char, configEntryLength C.uint32_t) C.int32_t {
	return rc(adapter().UnblockUser(device(configEntry, configEntryLength), str(userID, userIDLength), u32(unblockResult)))
}
