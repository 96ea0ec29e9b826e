package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

const maxWebhookBody = 64 << 10

// stripeWebhook handles checkout lifecycle events. Processing failures return
// 500 so the gateway redelivers; reconciliation is idempotent so redelivery
// is harmless.
func (h *Handler) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	event, err := webhook.ConstructEvent(body, r.Header.Get("Stripe-Signature"), h.WebhookSecret)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		session, orderID, err := sessionFromEvent(event)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.Orders.Reconcile(r.Context(), session.ID, orderID); err != nil {
			log.Printf("[webhook] reconcile order %d: %v", orderID, err)
			writeError(w, http.StatusInternalServerError, "failed to process event")
			return
		}

	case "checkout.session.async_payment_failed":
		session, orderID, err := sessionFromEvent(event)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.Orders.MarkFailed(r.Context(), orderID, session.ID); err != nil {
			log.Printf("[webhook] mark order %d failed: %v", orderID, err)
			writeError(w, http.StatusInternalServerError, "failed to process event")
			return
		}

	default:
		log.Printf("[webhook] ignoring event type %s", event.Type)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func sessionFromEvent(event stripe.Event) (*stripe.CheckoutSession, int, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, 0, err
	}
	orderID, err := strconv.Atoi(session.Metadata["orderId"])
	if err != nil {
		return nil, 0, err
	}
	return &session, orderID, nil
}
