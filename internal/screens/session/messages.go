package session

import (
	sess "github.com/abhisek/hanzi/internal/session"
)

// quizSavedMsg is sent when the finished quiz has been recorded.
type quizSavedMsg struct {
	Summary *sess.Summary
	Err     error
}
