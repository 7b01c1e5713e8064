package server

import (
	"StudyHub/handler"
)

type Handlers struct {
	Auth *handler.Auth
	Note *handler.Note
	Post *handler.Post
	User *handler.User
}
