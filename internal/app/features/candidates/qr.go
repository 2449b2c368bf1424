// internal/app/features/candidates/qr.go
package candidates

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/recruitdesk/internal/app/system/qrcode"
	"github.com/dalemusser/waffle/pantry/query"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /candidates/{id}/qr.png                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeQR renders the candidate's ID as a QR code so it can be printed on
// an interview slip and scanned at the desk.
func (h *Handler) ServeQR(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	size, _ := strconv.Atoi(query.Get(r, "size"))
	if size > 1024 {
		size = 1024
	}
	img, err := qrcode.PNG(c.CandidateID, size)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "candidate qr failed", err, "Unable to create the QR code.", candidatePath(c.CandidateID))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	_, _ = w.Write(img)
}
