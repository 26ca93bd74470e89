package pages

import (
	"context"

	"go.uber.org/zap"

	"sanjijikfarm/models"
)

// ReceiptAPI is the slice of the marketplace API the receipt page consumes.
type ReceiptAPI interface {
	ReceiptDetail(ctx context.Context, username, receiptID string) (models.Receipt, error)
	ReviewList(ctx context.Context) ([]models.Review, error)
}

// ReceiptStatus tags the page's load state.
type ReceiptStatus int

const (
	ReceiptLoading ReceiptStatus = iota
	ReceiptLoaded
	ReceiptFailed
)

// ReceiptDetailPage loads one receipt for one user and merges every line
// item with the review written for its product, if any.
type ReceiptDetailPage struct {
	api ReceiptAPI
	log *zap.Logger

	username  string
	receiptID string

	status  ReceiptStatus
	receipt models.Receipt

	selectedItem *models.ReceiptItem
	editorOpen   bool
	editMode     bool
}

// NewReceiptDetailPage returns a page for one user's receipt. The username
// comes from the caller rather than any ambient store.
func NewReceiptDetailPage(api ReceiptAPI, username, receiptID string, logger *zap.Logger) *ReceiptDetailPage {
	return &ReceiptDetailPage{
		api:       api,
		log:       logger,
		username:  username,
		receiptID: receiptID,
		status:    ReceiptLoading,
	}
}

// Load fetches the receipt summary and then the review list, left-joins
// reviews onto line items by product id, and swaps the merged receipt in
// as one unit. Nothing is published until the merge is complete; on any
// failure the page stays on its previous receipt and reports ReceiptFailed
// until the caller reloads.
func (p *ReceiptDetailPage) Load(ctx context.Context) error {
	summary, err := p.api.ReceiptDetail(ctx, p.username, p.receiptID)
	if err != nil {
		return p.fail(err)
	}
	reviews, err := p.api.ReviewList(ctx)
	if err != nil {
		return p.fail(err)
	}

	merged := make([]models.ReceiptItem, len(summary.ItemList))
	for i, item := range summary.ItemList {
		merged[i] = mergeReview(item, reviews)
	}
	summary.ItemList = merged

	p.receipt = summary
	p.status = ReceiptLoaded
	return nil
}

func (p *ReceiptDetailPage) fail(err error) error {
	p.log.Error("receipt load failed",
		zap.String("username", p.username),
		zap.String("receiptId", p.receiptID),
		zap.Error(err))
	p.status = ReceiptFailed
	return err
}

// mergeReview attaches the first review whose product id matches the
// item's, or explicit empty defaults when none does.
func mergeReview(item models.ReceiptItem, reviews []models.Review) models.ReceiptItem {
	item.ReviewID = nil
	item.Rating = nil
	item.ReviewText = ""
	item.ImageURL = nil

	for _, review := range reviews {
		if review.ProductID != item.ProductID {
			continue
		}
		reviewID := review.ReviewID
		rating := review.Rating
		imageURL := review.ImageURL
		item.ReviewID = &reviewID
		item.Rating = &rating
		item.ReviewText = review.Text
		item.ImageURL = &imageURL
		break
	}
	return item
}

// OpenEditor opens the review editor for an item. The item is re-resolved
// against the current receipt state by product id, so a stale copy held by
// the caller cannot choose the wrong mode; when the product is no longer
// in the receipt the passed item is used as-is. Edit mode is decided only
// by whether the resolved item already carries a review id.
func (p *ReceiptDetailPage) OpenEditor(item models.ReceiptItem) {
	resolved := item
	if current := p.findItem(item.ProductID); current != nil {
		resolved = *current
	}
	p.selectedItem = &resolved
	p.editMode = resolved.ReviewID != nil
	p.editorOpen = true
}

// CloseEditor reloads the full receipt/review join before dropping the
// editor state, so a review just created or edited shows up in the list.
func (p *ReceiptDetailPage) CloseEditor(ctx context.Context) error {
	err := p.Load(ctx)
	p.selectedItem = nil
	p.editorOpen = false
	p.editMode = false
	return err
}

func (p *ReceiptDetailPage) findItem(productID int64) *models.ReceiptItem {
	for i := range p.receipt.ItemList {
		if p.receipt.ItemList[i].ProductID == productID {
			return &p.receipt.ItemList[i]
		}
	}
	return nil
}

// Status returns the page's load state.
func (p *ReceiptDetailPage) Status() ReceiptStatus { return p.status }

// Receipt returns the merged receipt. Only meaningful once Status is
// ReceiptLoaded.
func (p *ReceiptDetailPage) Receipt() models.Receipt { return p.receipt }

// SelectedItem returns the item open in the editor, nil when closed.
func (p *ReceiptDetailPage) SelectedItem() *models.ReceiptItem { return p.selectedItem }

// EditorOpen reports whether the review editor is open.
func (p *ReceiptDetailPage) EditorOpen() bool { return p.editorOpen }

// EditMode reports whether the editor edits an existing review.
func (p *ReceiptDetailPage) EditMode() bool { return p.editMode }
