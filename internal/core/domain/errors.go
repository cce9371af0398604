package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrLoginDenied = errors.New("login denied")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrRuleNotFound = errors.New("login rule not found")
var ErrBusinessNotFound = errors.New("business not found")
var ErrContactNotFound = errors.New("contact not found")
var ErrQuoteNotFound = errors.New("quote not found")
var ErrMissingAmount = errors.New("service line is missing an amount")
var ErrUnknownEnumValue = errors.New("unrecognized enum value")
var ErrNothingToUpdate = errors.New("no valid fields provided for update")
