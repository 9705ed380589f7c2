package auth

import "strings"

const minPasswordLen = 6

func isValidMobile(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	if len(mobile) != 10 {
		return false
	}
	for _, char := range mobile {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLen
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
