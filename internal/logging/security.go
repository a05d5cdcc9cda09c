// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const appID = "business-access-service"

// SecurityLogger follows the OWASP logging vocabulary for event names
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String("event", "sys_startup:"+appID), zap.String("level", "WARN"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String("event", "sys_shutdown:"+appID), zap.String("level", "WARN"))
}

func (s *SecurityLogger) AuthnSuccess(userID string) {
	s.l.Info(
		fmt.Sprintf("user %s signed in", userID),
		zap.String("event", "authn_login_success:"+userID),
		zap.String("level", "INFO"),
	)
}

func (s *SecurityLogger) AuthnFailure(userID string) {
	s.l.Warn(
		fmt.Sprintf("user %s failed to sign in", userID),
		zap.String("event", "authn_login_fail:"+userID),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) SessionTerminated(userID string) {
	s.l.Info(
		fmt.Sprintf("session of user %s terminated", userID),
		zap.String("event", "session_terminated:"+userID),
		zap.String("level", "INFO"),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		fmt.Sprintf("user %s attempted to access %s without entitlement", userID, resource),
		zap.String("event", fmt.Sprintf("authz_fail:%s,%s", userID, resource)),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Warn(
		fmt.Sprintf("administrator %s performed %s on %s", userID, action, resource),
		zap.String("event", fmt.Sprintf("authz_admin:%s,%s", userID, action)),
		zap.String("level", "WARN"),
	)
}
