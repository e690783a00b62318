package listing

import (
	"errors"
	"slices"
	"strings"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/pkg/errs"
)

var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing or RestoreListing")

// Listing is something a worker sells. Images are opaque storage paths kept
// in the order they were uploaded. Digital products also carry the path of
// the downloadable file.
type Listing struct {
	id          kernel.UUID
	workerID    kernel.UUID
	listingType Type
	title       string
	description string
	price       kernel.Money
	images      []string
	filePath    string

	isConstructed bool
}

func NewListing(
	id, workerID kernel.UUID,
	listingType Type,
	title, description string,
	price kernel.Money,
	images []string,
	filePath string,
) (*Listing, error) {
	return RestoreListing(id, workerID, listingType, title, description, price, images, filePath)
}

func RestoreListing(
	id, workerID kernel.UUID,
	listingType Type,
	title, description string,
	price kernel.Money,
	images []string,
	filePath string,
) (*Listing, error) {
	l := &Listing{isConstructed: true, description: description}
	if err := errors.Join(
		id.Validate(),
		workerID.Validate(),
		listingType.Validate(),
		price.Validate(),
		l.setTitle(title),
		l.setFile(listingType, filePath),
	); err != nil {
		return nil, err
	}
	l.id = id
	l.workerID = workerID
	l.listingType = listingType
	l.price = price
	l.ReplaceImages(images)
	return l, nil
}

func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

func (l *Listing) ID() kernel.UUID       { return l.id }
func (l *Listing) WorkerID() kernel.UUID { return l.workerID }
func (l *Listing) Type() Type            { return l.listingType }
func (l *Listing) Title() string         { return l.title }
func (l *Listing) Description() string   { return l.description }
func (l *Listing) Price() kernel.Money   { return l.price }
func (l *Listing) FilePath() string      { return l.filePath }

// Images returns a copy of the ordered image paths.
func (l *Listing) Images() []string {
	return slices.Clone(l.images)
}

// IsOwnedBy reports whether workerID owns the listing.
func (l *Listing) IsOwnedBy(workerID kernel.UUID) bool {
	return l.workerID.IsEqual(workerID)
}

// ReplaceImages clears the image list and stores paths in the given order,
// skipping blanks.
func (l *Listing) ReplaceImages(paths []string) {
	l.images = make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			l.images = append(l.images, p)
		}
	}
}

func (l *Listing) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setFile(listingType Type, filePath string) error {
	filePath = strings.TrimSpace(filePath)
	if listingType == DigitalProduct && filePath == "" {
		return errs.NewValueIsRequiredError("digital product file")
	}
	if listingType == Service {
		filePath = ""
	}
	l.filePath = filePath
	return nil
}
