package model

import "errors"

var (
	ErrValidation         = errors.New("validation error")      // 400
	ErrBatchNotFound      = errors.New("batch not found")       // 404
	ErrSupplierNotFound   = errors.New("supplier not found")    // 404
	ErrBatchAlreadyExists = errors.New("batch already exists")  // 409
	ErrWizardStep         = errors.New("wizard step violation") // 409
	ErrWizardNotStarted   = errors.New("wizard not started")    // 404
	ErrSettingNotFound    = errors.New("setting not found")
	ErrEmptyCatalog       = errors.New("empty catalog")
	ErrInterpreterFailure = errors.New("query interpreter failure")
	ErrBadGateway         = errors.New("bad gateway")         // 502
	ErrAIUnavailable      = errors.New("ai unavailable")      // 503
	ErrServiceUnavailable = errors.New("service unavailable") // 503
)
