package sdk

import (
	"fmt"

	"github.com/rustopian/eisodos/fixture"
)

// logMessage meters the environment's log syscall: flat base plus one
// unit per byte.
func logMessage(m *meter, message string) {
	m.consume(costLogBase + uint64(len(message)))
}

// invokeTransfer meters a cross-program transfer invocation and moves
// lamports between two writable accounts.
func invokeTransfer(from, to *Account, lamports uint64) error {
	from.meter.consume(costInvoke)
	if !from.writable || !to.writable {
		return fmt.Errorf("transfer requires writable accounts")
	}
	if !from.signer {
		return fmt.Errorf("transfer source must sign")
	}
	if from.lamports < lamports {
		return fmt.Errorf("insufficient lamports: %v < %v", from.lamports, lamports)
	}
	from.lamports -= lamports
	to.lamports += lamports
	return nil
}

// invokeCreateAccount meters a cross-program create-account invocation:
// funds the new account, sizes its data and assigns ownership.
func invokeCreateAccount(funder, created *Account, lamports, space uint64, owner fixture.Pubkey) error {
	funder.meter.consume(costInvoke)
	if created.lamports != 0 || len(created.data) != 0 {
		return fmt.Errorf("account already in use")
	}
	if !funder.signer || !created.signer {
		return fmt.Errorf("create-account requires both signatures")
	}
	if funder.lamports < lamports {
		return fmt.Errorf("insufficient lamports: %v < %v", funder.lamports, lamports)
	}
	funder.lamports -= lamports
	created.lamports = lamports
	created.data = make([]byte, space)
	created.owner = owner
	return nil
}
