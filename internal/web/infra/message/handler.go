package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/marcodiri/micros-chess/internal/web/app/external"
	pkgmessage "github.com/marcodiri/micros-chess/pkg/message"
)

type GameProposalAcceptedHandler func(context.Context, external.EventGameProposalAccepted) error

// NewGameProposalAcceptedHandler decodes the event payload. Malformed payloads and rejected
// games are not retried.
func NewGameProposalAcceptedHandler(handle GameProposalAcceptedHandler) pkgmessage.Handler {
	return func(ctx context.Context, msg *pkgmessage.Message) error {
		var evt external.EventGameProposalAccepted
		err := json.Unmarshal(msg.Payload, &evt)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s payload: %w", external.EventTypeGameProposalAccepted, err))
		}

		err = handle(ctx, evt)
		if errors.Is(err, external.ErrGameRejected) {
			return backoff.Permanent(err)
		}

		return err
	}
}
