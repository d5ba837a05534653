package session

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"net/http"
	"strings"
	"time"

	ginsessions "github.com/gin-contrib/sessions"
	"github.com/gorilla/securecookie"
	gsessions "github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps session payloads in redis; the browser cookie only
// carries a signed session id. It satisfies the gin-contrib/sessions
// Store interface so handlers stay oblivious to which backend is
// configured.
type RedisStore struct {
	client *redis.Client
	codecs []securecookie.Codec
	opts   *gsessions.Options
}

func NewRedisStore(client *redis.Client, keyPairs ...[]byte) *RedisStore {
	return &RedisStore{
		client: client,
		codecs: securecookie.CodecsFromPairs(keyPairs...),
		opts: &gsessions.Options{
			Path:   "/",
			MaxAge: 1800,
		},
	}
}

func (s *RedisStore) Options(opts ginsessions.Options) {
	s.opts = opts.ToGorillaOptions()
}

func (s *RedisStore) Get(r *http.Request, name string) (*gsessions.Session, error) {
	return gsessions.GetRegistry(r).Get(s, name)
}

func (s *RedisStore) New(r *http.Request, name string) (*gsessions.Session, error) {
	sess := gsessions.NewSession(s, name)
	opts := *s.opts
	sess.Options = &opts
	sess.IsNew = true

	cookie, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}
	if err := securecookie.DecodeMulti(name, cookie.Value, &sess.ID, s.codecs...); err != nil {
		// Tampered or outdated cookie; hand out a fresh session.
		return sess, nil
	}
	if err := s.load(r.Context(), sess); err == nil {
		sess.IsNew = false
	}
	return sess, nil
}

func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, sess *gsessions.Session) error {
	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.client.Del(r.Context(), keyPrefix+sess.ID).Err(); err != nil {
				return err
			}
		}
		http.SetCookie(w, gsessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = newSessionID()
	}
	if err := s.store(r.Context(), sess); err != nil {
		return err
	}
	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, gsessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

func (s *RedisStore) load(ctx context.Context, sess *gsessions.Session) error {
	data, err := s.client.Get(ctx, keyPrefix+sess.ID).Bytes()
	if err != nil {
		return err
	}
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&sess.Values)
}

func (s *RedisStore) store(ctx context.Context, sess *gsessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sess.Values); err != nil {
		return err
	}
	ttl := time.Duration(sess.Options.MaxAge) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return s.client.Set(ctx, keyPrefix+sess.ID, buf.Bytes(), ttl).Err()
}

func newSessionID() string {
	raw := securecookie.GenerateRandomKey(32)
	return strings.TrimRight(base32.StdEncoding.EncodeToString(raw), "=")
}
