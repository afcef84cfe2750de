package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"  // sentinel error values and errors.Is mapping
    "strconv" // user IDs travel as the decimal string subject claim
    "time"    // expiry arithmetic

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and verifying signed tokens
)

// Sentinel verification failures.  The three cases are deliberately kept
// distinct so tests and callers can tell them apart; the HTTP boundary
// collapses all of them into a single 401 so clients cannot probe which
// check failed.
var (
    ErrTokenMalformed        = errors.New("token malformed")
    ErrTokenInvalidSignature = errors.New("token signature mismatch")
    ErrTokenExpired          = errors.New("token expired")
)

// hmacMethods lists the accepted signing algorithms.  Tokens signed with
// anything outside the HMAC family are rejected up front.
var hmacMethods = []string{"HS256", "HS384", "HS512"}

// TokenClaims is the payload carried by an access token: the standard
// registered claims (sub, iat, exp) plus the account email.  Subject holds
// the user ID as a decimal string.
type TokenClaims struct {
    Email string `json:"email"`
    jwt.RegisteredClaims
}

// UserID parses the subject claim back into a numeric user identifier.
func (c *TokenClaims) UserID() (uint64, error) {
    id, err := strconv.ParseUint(c.Subject, 10, 64)
    if err != nil {
        return 0, ErrTokenMalformed
    }
    return id, nil
}

// AccessToken represents a signed access token along with its expiry.
// Access tokens are short-lived, carried in the Authorization header and
// backed by no server-side state: validity is fully reconstructable from
// the token bytes plus the signing secret.
type AccessToken struct {
    Token string    // the serialized compact token string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HMAC token for a user.  The alg
// parameter selects the HMAC variant (HS256/HS384/HS512).  The issued-at
// and expiry instants are derived from now and ttl so issuance is
// deterministic for a fixed clock.
func NewAccessToken(secret, alg string, userID uint64, email string, now time.Time, ttl time.Duration) (AccessToken, error) {
    method := jwt.GetSigningMethod(alg)
    if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
        return AccessToken{}, errors.New("unsupported signing algorithm: " + alg)
    }
    exp := now.UTC().Add(ttl)
    claims := TokenClaims{
        Email: email,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   strconv.FormatUint(userID, 10),
            IssuedAt:  jwt.NewNumericDate(now.UTC()),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyToken checks a compact token string against the signing secret and
// the supplied clock.  It returns the decoded claims on success, or exactly
// one of ErrTokenMalformed, ErrTokenInvalidSignature or ErrTokenExpired.
// The signature comparison inside the library is constant-time.  A token
// whose expiry equals now is already expired; only exp strictly in the
// future passes.
func VerifyToken(token, secret string, now time.Time) (*TokenClaims, error) {
    claims := &TokenClaims{}
    _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    },
        jwt.WithValidMethods(hmacMethods),
        jwt.WithExpirationRequired(),
        jwt.WithTimeFunc(func() time.Time { return now }),
    )
    switch {
    case err == nil:
        return claims, nil
    case errors.Is(err, jwt.ErrTokenExpired):
        return nil, ErrTokenExpired
    case errors.Is(err, jwt.ErrTokenSignatureInvalid):
        return nil, ErrTokenInvalidSignature
    default:
        // Wrong segment count, undecodable segments, bad JSON, rejected
        // signing method: all shades of "not a token we produced".
        return nil, ErrTokenMalformed
    }
}
