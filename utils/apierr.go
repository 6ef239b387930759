package utils

import (
	"errors"
	"net/http"

	"clubkeeper/brawlapi"
)

// APIErrorMessage turns an API failure into a user-facing message.
func APIErrorMessage(err error, subject string) string {
	var apiErr *brawlapi.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusNotFound:
			return subject + " not found. Check the tag and try again."
		case http.StatusForbidden:
			return "The Brawl Stars API rejected the bot's credentials."
		}
	}
	return "The Brawl Stars API is unavailable right now, try again later."
}
