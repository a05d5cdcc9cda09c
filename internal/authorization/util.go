// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "strings"

const (
	VIEWER_RELATION = "viewer"

	USER_TYPE = "user"
	PAGE_TYPE = "page"
)

func UserTuple(userId string) string {
	return USER_TYPE + ":" + userId
}

func PageTuple(page string) string {
	return PAGE_TYPE + ":" + page
}

// PageFromObject strips the type prefix from a page object, ok is false for any other type.
func PageFromObject(object string) (string, bool) {
	return strings.CutPrefix(object, PAGE_TYPE+":")
}
