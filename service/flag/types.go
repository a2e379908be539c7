package flag

import "github.com/elC0mpa/reservation-doctor/model"

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
