// Package permission решает, может ли вызывающий выполнить действие над учётной записью.
// Пакет не выполняет ввода-вывода.
//
// Порядок проверок (первое совпадение побеждает):
//  1. вызывающий не определён: Unauthenticated;
//  2. проверка личности для действия (сам или админ, только админ): Forbidden;
//  3. удалённая учётная запись не может менять саму себя: Forbidden.
//
// Проверки формата и уникальности выполняет вызывающий слой после Authorize.
package permission

import (
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Action защищённое действие над учётной записью.
type Action uint8

// Действия.
const (
	ActionViewSelf Action = iota + 1
	ActionCreate
	ActionList
	ActionLookup
	ActionUpdateProfile
	ActionChangePassword
	ActionChangeLogin
	ActionRestore
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionViewSelf:
		return "view_self"
	case ActionCreate:
		return "create"
	case ActionList:
		return "list"
	case ActionLookup:
		return "lookup"
	case ActionUpdateProfile:
		return "update_profile"
	case ActionChangePassword:
		return "change_password"
	case ActionChangeLogin:
		return "change_login"
	case ActionRestore:
		return "restore"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Request входные данные проверки.
type Request struct {
	Caller    *models.User
	TargetUID string // UID целевой записи, пусто для действий без цели
	Action    Action
	// GrantAdmin для ActionCreate: новая запись запрашивает права администратора.
	GrantAdmin bool
}

// Причины отказа.
const (
	ReasonUnauthenticated = "caller is not authenticated"
	ReasonAdminOnly       = "action is available to administrators only"
	ReasonNotOwner        = "cannot modify another user"
	ReasonRevokedSelf     = "account revoked, self modification is not allowed"
	ReasonAdminElevation  = "only administrators can create administrators"
	ReasonUnknownAction   = "unknown action"
)

// Authorize проверяет право вызывающего на действие.
func Authorize(req Request) error {
	caller := req.Caller
	if caller == nil || caller.UUID == "" {
		return apperr.Unauthenticated(ReasonUnauthenticated)
	}

	switch req.Action {
	case ActionViewSelf:
		return nil

	case ActionCreate:
		if req.GrantAdmin && !caller.IsAdmin {
			return apperr.Forbidden(ReasonAdminElevation)
		}
		return nil

	case ActionList, ActionLookup, ActionRestore, ActionDelete:
		if !caller.IsAdmin {
			return apperr.Forbidden(ReasonAdminOnly)
		}
		return nil

	case ActionUpdateProfile, ActionChangePassword, ActionChangeLogin:
		return selfOrAdmin(caller, req.TargetUID)
	}

	return apperr.Forbidden(ReasonUnknownAction)
}

func selfOrAdmin(caller *models.User, targetUID string) error {
	self := caller.UUID == targetUID
	if !self && !caller.IsAdmin {
		return apperr.Forbidden(ReasonNotOwner)
	}
	if self && caller.IsRevoked() {
		return apperr.Forbidden(ReasonRevokedSelf)
	}
	return nil
}
