package testdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// UniqueEmail returns an email address that has not been used before in this
// or any other run.
func UniqueEmail(prefix string) string {
	id, _ := uuid.NewV4()
	return fmt.Sprintf("%s_%s@example.com", prefix, shortID(id))
}

// UniqueContent returns post content carrying a unique marker, so feed
// assertions can find exactly the post a test created.
func UniqueContent(prefix string) string {
	id, _ := uuid.NewV4()
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), shortID(id))
}

// RandomPassword returns a password containing at least one character of
// every class the application validates.
func RandomPassword(length int) string {
	const (
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		lower   = "abcdefghijklmnopqrstuvwxyz"
		digits  = "0123456789"
		special = "!@#$%^&*"
	)
	all := upper + lower + digits + special

	if length < 4 {
		length = 4
	}
	out := []byte{
		upper[rand.Intn(len(upper))],
		lower[rand.Intn(len(lower))],
		digits[rand.Intn(len(digits))],
		special[rand.Intn(len(special))],
	}
	for len(out) < length {
		out = append(out, all[rand.Intn(len(all))])
	}
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return string(out)
}

// RandomUser returns a user record with unique credentials.
func RandomUser() User {
	return User{
		Email:    UniqueEmail("testuser"),
		Password: RandomPassword(12),
		Name:     fmt.Sprintf("Test User %d", time.Now().UnixMilli()),
	}
}

func shortID(id uuid.UUID) string {
	return strings.Split(id.String(), "-")[0]
}
