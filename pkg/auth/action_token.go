package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ActionAudience marks tokens that authorize one emailed action. Access token
// verification refuses them.
const ActionAudience = "interview-action"

const defaultActionTTL = 72 * time.Hour

var ErrInvalidActionToken = errors.New("auth: invalid action token")

// ActionClaims binds a link to one interview, one decision and one recipient.
// Subject is the recipient's user id and Party their role.
type ActionClaims struct {
	InterviewRequestID string `json:"rid"`
	CandidateID        string `json:"cid"`
	Action             string `json:"act"`
	Party              string `json:"party"`
	jwt.RegisteredClaims
}

// ActionTokens signs and verifies HS256 action tokens.
type ActionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
}

// NewActionTokens returns nil when secret is empty.
func NewActionTokens(secret string, ttl time.Duration) *ActionTokens {
	if secret == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultActionTTL
	}
	return &ActionTokens{secret: []byte(secret), ttl: ttl, now: time.Now, newID: uuid.NewString}
}

func (t *ActionTokens) Issue(claims ActionClaims) (string, error) {
	now := t.now()
	claims.ID = t.newID()
	claims.Audience = jwt.ClaimStrings{ActionAudience}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *ActionTokens) Parse(raw string) (*ActionClaims, error) {
	claims := &ActionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(ActionAudience),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidActionToken, err)
	}
	if !token.Valid || claims.ExpiresAt == nil || claims.ID == "" || claims.Subject == "" || claims.InterviewRequestID == "" {
		return nil, ErrInvalidActionToken
	}
	return claims, nil
}

// IsActionToken reports whether verified access token claims carry the action audience.
func IsActionToken(claims jwt.Claims) bool {
	aud, err := claims.GetAudience()
	if err != nil {
		return false
	}
	for _, a := range aud {
		if a == ActionAudience {
			return true
		}
	}
	return false
}
