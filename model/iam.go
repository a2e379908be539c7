package model

// PrincipalType distinguishes the two assignable identity kinds
const (
	PrincipalTypeUser  = "User"
	PrincipalTypeGroup = "Group"
)

// Principal is a directory identity resolved on demand, never cached
type Principal struct {
	ID                string
	DisplayName       string
	UserPrincipalName string
	PrincipalType     string
}

// RoleAssignment is a role grant read from (or created on) a reservation scope
type RoleAssignment struct {
	PrincipalID        string
	PrincipalName      string
	PrincipalType      string
	RoleDefinitionName string
	Scope              string
}

// ReservationOwners groups the Owner assignments found on one reservation
type ReservationOwners struct {
	Reservation Reservation
	Owners      []RoleAssignment
}

// Assignment outcomes
const (
	AssignmentSucceeded = "Success"
	AssignmentFailed    = "Failed"
	AssignmentWhatIf    = "WhatIf"
)

// AssignmentResult records the outcome of one owner assignment attempt
type AssignmentResult struct {
	ReservationName string
	Outcome         string
	Err             error
}

// AssignmentSummary tallies a bulk assignment run
type AssignmentSummary struct {
	Results      []AssignmentResult
	SuccessCount int
	FailCount    int
	WhatIfCount  int
	FailedNames  []string
}
