// Package errors defines the sentinel errors shared between usecases and
// handlers. Handlers map them onto HTTP status codes.
package errors

import "errors"

// Registration errors.
var (
	// ErrRegistrationClosed indicates the registration toggle is off.
	ErrRegistrationClosed = errors.New("registration is currently closed")

	// ErrDuplicateTeamName indicates another team already uses the name
	// (comparison is case-insensitive).
	ErrDuplicateTeamName = errors.New("team name is already taken")

	// ErrDuplicateMemberEmail indicates a member email is already
	// registered with another team.
	ErrDuplicateMemberEmail = errors.New("member email is already registered")

	// ErrInvalidTeamSize indicates the roster size is outside the allowed
	// range or does not match the submitted members.
	ErrInvalidTeamSize = errors.New("invalid team size")

	// ErrMissingFields indicates required input fields were absent.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidHouse indicates an unknown house value.
	ErrInvalidHouse = errors.New("invalid house")
)

// Team lifecycle errors.
var (
	// ErrTeamNotFound indicates no team exists with the given id.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamNotApproved indicates the operation requires an approved team.
	ErrTeamNotApproved = errors.New("team is not approved")

	// ErrMemberNotFound indicates no member exists with the given id on
	// the team.
	ErrMemberNotFound = errors.New("member not found")

	// ErrLastMember indicates an attempt to remove the sole remaining
	// member of a team.
	ErrLastMember = errors.New("cannot remove the last member of a team")
)

// Problem statement errors.
var (
	// ErrStatementNotFound indicates no problem statement exists with the
	// given id.
	ErrStatementNotFound = errors.New("problem statement not found")

	// ErrStatementAlreadySelected indicates the team has already locked in
	// a problem statement.
	ErrStatementAlreadySelected = errors.New("problem statement already selected")

	// ErrStatementRestricted indicates the statement is reserved for a
	// different house.
	ErrStatementRestricted = errors.New("problem statement is restricted to another house")

	// ErrInvalidDifficulty indicates an unknown difficulty label.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Review and leaderboard errors.
var (
	// ErrInvalidRound indicates a round outside 1..3.
	ErrInvalidRound = errors.New("invalid review round")

	// ErrInvalidMarks indicates negative marks.
	ErrInvalidMarks = errors.New("marks cannot be negative")

	// ErrFeedbackRequired indicates an empty feedback text.
	ErrFeedbackRequired = errors.New("feedback is required")

	// ErrLeaderboardClosed indicates the leaderboard toggle is off.
	ErrLeaderboardClosed = errors.New("leaderboard is currently closed")

	// ErrTeamsDisabled indicates the public team listing toggle is off.
	ErrTeamsDisabled = errors.New("team listing is currently disabled")
)

// Auth errors.
var (
	// ErrInvalidCredentials indicates a failed admin or team login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLoginDisabled indicates the team login toggle is off.
	ErrLoginDisabled = errors.New("login is currently disabled")

	// ErrUnauthorized indicates a missing or expired session.
	ErrUnauthorized = errors.New("unauthorized")
)

// Sponsor errors.
var (
	// ErrSponsorNotFound indicates no sponsor exists with the given id.
	ErrSponsorNotFound = errors.New("sponsor not found")
)

// Upload errors.
var (
	// ErrUnsupportedFileType indicates an upload with a disallowed
	// extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileNotFound indicates a requested upload does not exist.
	ErrFileNotFound = errors.New("file not found")
)
