package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
	"github.com/opst/trackboard/pkg/dashboard/session"
	"github.com/opst/trackboard/pkg/utils/logger"
	"github.com/opst/trackboard/pkg/utils/try"
)

func TestSession(t *testing.T) {
	testee := session.New("tkn", "csrf")
	if !testee.Authenticated() || testee.Token() != "tkn" || testee.CSRFToken() != "csrf" {
		t.Fatalf("unexpected session: %s, %s", testee.Token(), testee.CSRFToken())
	}

	testee.Discard()
	if testee.Authenticated() || testee.Token() != "" || testee.CSRFToken() != "" {
		t.Errorf("not discarded: %s, %s", testee.Token(), testee.CSRFToken())
	}
}

func TestRedirectToLogin(t *testing.T) {
	sess := session.New("tkn", "csrf")
	nav := navigation.NewHistory("/app/alice/mnist/")

	testee := session.RedirectToLogin(sess, nav, logger.Null())
	testee(context.Background(), errors.New("401"))

	if sess.Authenticated() {
		t.Error("session is not discarded")
	}
	if l := nav.Location(); l != navigation.LoginPath {
		t.Errorf("location: %s", l)
	}
}

func TestExpiresAt(t *testing.T) {
	exp := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	sign := func(claims jwt.Claims) string {
		return try.To(jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))).OrFatal(t)
	}

	t.Run("JWT token with exp expires", func(t *testing.T) {
		testee := session.New(sign(jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}), "")

		actual, ok := testee.ExpiresAt()
		if !ok || !actual.Equal(exp) {
			t.Errorf("unexpected expiration: %s, %v", actual, ok)
		}
		if testee.Expired(exp.Add(-time.Minute)) {
			t.Error("expired before exp")
		}
		if !testee.Expired(exp) {
			t.Error("not expired at exp")
		}
	})

	t.Run("JWT token without exp does not expire", func(t *testing.T) {
		testee := session.New(sign(jwt.RegisteredClaims{Subject: "alice"}), "")
		if _, ok := testee.ExpiresAt(); ok || testee.Expired(exp) {
			t.Error("should not expire")
		}
	})

	t.Run("opaque token does not expire", func(t *testing.T) {
		testee := session.New("0123456789abcdef", "")
		if _, ok := testee.ExpiresAt(); ok || testee.Expired(exp) {
			t.Error("should not expire")
		}
	})
}
