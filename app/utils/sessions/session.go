package sessions

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "hstore-session"

	sessionIDKey = "session_id"

	sessionMaxAge = 86400 * 7
)

// Resolver issues and re-reads the opaque session token that correlates an
// anonymous client with its cart. No user identity is involved.
type Resolver struct {
	store *sessions.CookieStore
}

func NewResolver(keyPairs ...[]byte) *Resolver {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &Resolver{store: store}
}

// Resolve returns the request's session token, minting a fresh one when the
// cookie is absent or unreadable. Saving on every call rewrites the cookie,
// which slides its expiry forward.
func (rs *Resolver) Resolve(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := rs.store.Get(r, sessionCookieName)
	if err != nil {
		// A tampered or stale cookie decodes as a fresh session.
		log.Printf("Resolver.Resolve: error decoding session cookie: %v", err)
	}

	sessionID, ok := session.Values[sessionIDKey].(string)
	if !ok || sessionID == "" {
		sessionID = uuid.New().String()
		session.Values[sessionIDKey] = sessionID
	}

	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return sessionID, nil
}
