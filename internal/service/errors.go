package service

import "errors"

var (
	ErrVaultLocked    = errors.New("vault is locked")
	ErrVaultNotFound  = errors.New("no vault found locally or on the remote authority")
	ErrVaultExists    = errors.New("vault already initialised")
	ErrRecordNotFound = errors.New("record not found in vault")

	ErrSyncInProgress     = errors.New("sync already in progress")
	ErrUnresolvedConflict = errors.New("unresolved conflicts remain")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
