// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the sync
// client.
//
// All Msg* constants are human-readable strings shown to the user in the
// terminal UI when a sync cannot be started or fails. Keeping them in one
// place ensures consistent wording across screens.
package app

const (
	// MsgLocalInstanceUnavailable is shown when the local catalog instance
	// cannot be reached (connection refused, DNS failure, timeout).
	MsgLocalInstanceUnavailable = "Отсутствует сеть или локальный каталог недоступен"

	// MsgInvalidPeerURL is shown when the local instance rejects the peer
	// address as malformed or uses an unsupported scheme.
	MsgInvalidPeerURL = "Некорректный адрес пира"

	// MsgEmptyPeerURL is shown when the peer address field is left blank.
	MsgEmptyPeerURL = "Укажите адрес пира"

	// MsgSyncAlreadyRunning is shown when a pass with the same peer is
	// already in progress on the local instance.
	MsgSyncAlreadyRunning = "Синхронизация с этим пиром уже выполняется"

	// MsgUnknownJob is shown when the local instance no longer knows the job,
	// usually because its status was evicted or the instance restarted.
	MsgUnknownJob = "Задача не найдена на локальном каталоге"

	// MsgPeerUnauthorized is shown when the peer rejected our peer token.
	MsgPeerUnauthorized = "Пир отклонил авторизацию"

	// MsgCopied is the transient status after the job id was copied.
	MsgCopied = "Скопировано!"
)
