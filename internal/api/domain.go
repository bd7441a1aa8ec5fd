package api

import (
	"github.com/leasewatch/leasewatch/internal/agreements"
	"github.com/leasewatch/leasewatch/internal/archive"
	"github.com/leasewatch/leasewatch/internal/documents"
	"github.com/leasewatch/leasewatch/internal/notify"
	"github.com/leasewatch/leasewatch/internal/recipients"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Agreements agreements.System
	Archive    archive.System
	Documents  documents.System
	Recipients recipients.System
	Notify     notify.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	agreementsSystem := agreements.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		runtime.Storage,
		docsSystem,
	)

	archiveSystem := archive.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	recipientsSystem := recipients.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	notifySystem := notify.New(
		agreementsSystem,
		recipientsSystem,
		notify.NewMailer(runtime.SMTP),
		runtime.SMTP,
		runtime.Logger,
	)

	return &Domain{
		Agreements: agreementsSystem,
		Archive:    archiveSystem,
		Documents:  docsSystem,
		Recipients: recipientsSystem,
		Notify:     notifySystem,
	}
}
