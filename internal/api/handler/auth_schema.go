package handler

import "net/http"

// sessionCookieMaxAge matches the session token TTL of 3 days.
const sessionCookieMaxAge = 3 * 24 * 60 * 60

type signupRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	Username          string `json:"username"`
	Phone             string `json:"phone,omitempty"`
	IsShariaCompliant bool   `json:"isShariaCompliant,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupUser is the public account view returned on signup. The password
// hash has no representation here at all.
type signupUser struct {
	Email             string `json:"email"`
	Username          string `json:"username"`
	Phone             string `json:"phone,omitempty"`
	IsShariaCompliant bool   `json:"isShariaCompliant"`
}

type signupResponse struct {
	Message string     `json:"message"`
	Success bool       `json:"success"`
	User    signupUser `json:"user"`
}

// loginUser omits the phone; login reveals no more than the client already
// proved it knows.
type loginUser struct {
	Email             string `json:"email"`
	Username          string `json:"username"`
	IsShariaCompliant bool   `json:"isShariaCompliant"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Success bool      `json:"success"`
	User    loginUser `json:"user"`
}

// sessionCookie builds the HTTP-only session cookie. Secure is enabled only
// in production-like environments.
func sessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
