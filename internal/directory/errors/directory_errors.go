package directoryerrors

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
)

var (
	ErrPlacementNotFound = apperror.New(
		apperror.CodeNotFound,
		"company, site and team do not resolve together",
		http.StatusNotFound,
	)
	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"team not found",
		http.StatusNotFound,
	)
	ErrSiteNotFound = apperror.New(
		apperror.CodeNotFound,
		"site not found",
		http.StatusNotFound,
	)
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"company not found",
		http.StatusNotFound,
	)
	ErrInvalidID            = apperror.ErrInvalidInput.WithMessage("invalid directory id")
	ErrDirectoryUnavailable = apperror.ErrDependencyFailure.WithMessage("directory lookup failed")
)
