package mmrstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	fossilcommon "github.com/OilerNetwork/fossil-L1-L2-relayer/common"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/db"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/mmrstore/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const errWhileRollbackFormat = "error while rolling back tx: %w"

var (
	// ErrAlreadyInitialized is returned when Initialize is called on a store
	// that has already been initialized
	ErrAlreadyInitialized = errors.New("store already initialized")
	// ErrUnauthorized is returned when the caller of UpdateMMRState is not
	// the authorized verifier
	ErrUnauthorized = errors.New("caller is not the authorized verifier")
	// ErrIntervalTooSmall is returned when the submitted latest MMR block is
	// not beyond the stored one by at least the minimum update interval
	ErrIntervalTooSmall = errors.New("latest MMR block interval is too small")
)

// MMRSnapshot is the committed state of one MMR batch, tagged with its index.
// An index that was never written reads as the zero-valued snapshot.
type MMRSnapshot struct {
	BatchIndex  uint64      `meddler:"batch_index" json:"batchIndex"`
	LeavesCount uint64      `meddler:"leaves_count" json:"leavesCount"`
	RootHash    common.Hash `meddler:"root_hash,hash" json:"rootHash"`
}

// L1BlockHash is the most recently recorded reference blockhash from L1.
type L1BlockHash struct {
	BlockNumber uint64      `json:"blockNumber"`
	Blockhash   common.Hash `json:"blockhash"`
}

// EventLatestBlockhashFromL1Stored is published after a new L1 reference
// blockhash has been committed.
type EventLatestBlockhashFromL1Stored struct {
	BlockNumber uint64
	Blockhash   common.Hash
}

// EventMMRStateUpdated is published after a batch update has been committed.
type EventMMRStateUpdated struct {
	BatchIndex  uint64
	LeavesCount uint64
	RootHash    common.Hash
}

// globalState mirrors the single global_state row. The row is created by the
// migration, so it always exists; initialized is flipped exactly once.
type globalState struct {
	ID                  uint64         `meddler:"id"`
	Initialized         bool           `meddler:"initialized"`
	VerifierAddress     common.Address `meddler:"verifier_address,address"`
	MinUpdateInterval   uint64         `meddler:"min_update_interval"`
	LatestL1BlockNumber uint64         `meddler:"latest_l1_block_number"`
	LatestL1Blockhash   common.Hash    `meddler:"latest_l1_blockhash,hash"`
	LatestMMRBlock      uint64         `meddler:"latest_mmr_block"`
}

// MMRStorage is the sole custodian of the persistent MMR and reference
// blockhash state. Every mutation runs in a single sqlite tx, events are
// published on commit only.
type MMRStorage struct {
	logger *log.Logger
	db     *sql.DB

	blockhashEvents fossilcommon.GenericSubscriber[EventLatestBlockhashFromL1Stored]
	updateEvents    fossilcommon.GenericSubscriber[EventMMRStateUpdated]
}

// NewMMRStorage runs the migrations and opens the store at cfg.DBPath.
func NewMMRStorage(logger *log.Logger, cfg Config) (*MMRStorage, error) {
	if err := migrations.RunMigrations(cfg.DBPath); err != nil {
		return nil, err
	}

	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return &MMRStorage{
		logger:          logger,
		db:              database,
		blockhashEvents: fossilcommon.NewGenericSubscriberImpl[EventLatestBlockhashFromL1Stored](),
		updateEvents:    fossilcommon.NewGenericSubscriberImpl[EventMMRStateUpdated](),
	}, nil
}

// Initialize sets the authorized verifier address and the minimum update
// interval. It fails with ErrAlreadyInitialized on any call after the first
// successful one, leaving the state of the first call untouched.
func (s *MMRStorage) Initialize(
	ctx context.Context, verifierAddress common.Address, minUpdateInterval uint64,
) error {
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	state, err := getGlobalState(tx)
	if err != nil {
		return err
	}
	if state.Initialized {
		err = ErrAlreadyInitialized
		return err
	}

	_, err = tx.Exec(
		`UPDATE global_state
		SET initialized = 1, verifier_address = $1, min_update_interval = $2
		WHERE id = 1;`,
		verifierAddress.Hex(), minUpdateInterval,
	)
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	s.logger.Infof(
		"store initialized: verifier %s, min update interval %d",
		verifierAddress, minUpdateInterval,
	)
	return nil
}

// StoreLatestBlockhashFromL1 overwrites the single stored L1 reference pair.
// It is an independent channel, no invariant links it to the MMR state.
func (s *MMRStorage) StoreLatestBlockhashFromL1(
	ctx context.Context, blockNumber uint64, blockhash common.Hash,
) error {
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	_, err = tx.Exec(
		`UPDATE global_state
		SET latest_l1_block_number = $1, latest_l1_blockhash = $2
		WHERE id = 1;`,
		blockNumber, blockhash.Hex(),
	)
	if err != nil {
		return err
	}

	tx.AddCommitCallback(func() {
		s.blockhashEvents.Publish(EventLatestBlockhashFromL1Stored{
			BlockNumber: blockNumber,
			Blockhash:   blockhash,
		})
	})

	if err = tx.Commit(); err != nil {
		return err
	}
	s.logger.Debugf("stored latest L1 blockhash %s (block %d)", blockhash, blockNumber)
	return nil
}

// UpdateMMRState is the proof-gated mutation. It writes the batch snapshot
// and advances latest_mmr_block atomically, after checking that the caller is
// the authorized verifier and that the new latest MMR block is strictly
// beyond the stored one by at least min_update_interval. The batch index may
// or may not exist already, existing snapshots are overwritten.
func (s *MMRStorage) UpdateMMRState(
	ctx context.Context,
	caller common.Address,
	batchIndex, latestMMRBlock, leavesCount uint64,
	mmrRoot common.Hash,
) error {
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	state, err := getGlobalState(tx)
	if err != nil {
		return err
	}
	// an uninitialized store has no authorized verifier
	if !state.Initialized || caller != state.VerifierAddress {
		err = fmt.Errorf("%w: caller %s", ErrUnauthorized, caller)
		return err
	}
	if latestMMRBlock <= state.LatestMMRBlock ||
		latestMMRBlock-state.LatestMMRBlock < state.MinUpdateInterval {
		err = fmt.Errorf(
			"%w: latest MMR block %d, stored %d, min interval %d",
			ErrIntervalTooSmall, latestMMRBlock, state.LatestMMRBlock, state.MinUpdateInterval,
		)
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO mmr_batches (batch_index, leaves_count, root_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT(batch_index) DO UPDATE
		SET leaves_count = excluded.leaves_count, root_hash = excluded.root_hash;`,
		batchIndex, leavesCount, mmrRoot.Hex(),
	)
	if err != nil {
		return err
	}
	_, err = tx.Exec(
		`UPDATE global_state SET latest_mmr_block = $1 WHERE id = 1;`,
		latestMMRBlock,
	)
	if err != nil {
		return err
	}

	tx.AddCommitCallback(func() {
		s.updateEvents.Publish(EventMMRStateUpdated{
			BatchIndex:  batchIndex,
			LeavesCount: leavesCount,
			RootHash:    mmrRoot,
		})
	})

	if err = tx.Commit(); err != nil {
		return err
	}
	s.logger.Infof(
		"MMR state updated: batch %d, leaves %d, root %s, latest MMR block %d",
		batchIndex, leavesCount, mmrRoot, latestMMRBlock,
	)
	return nil
}

// GetLatestBlockhashFromL1 returns the most recently stored L1 reference pair.
func (s *MMRStorage) GetLatestBlockhashFromL1(ctx context.Context) (L1BlockHash, error) {
	state, err := getGlobalState(s.db)
	if err != nil {
		return L1BlockHash{}, err
	}
	return L1BlockHash{
		BlockNumber: state.LatestL1BlockNumber,
		Blockhash:   state.LatestL1Blockhash,
	}, nil
}

// GetMMRState returns the snapshot for the given batch index. An index that
// was never written returns the zero-valued snapshot, not an error.
func (s *MMRStorage) GetMMRState(ctx context.Context, batchIndex uint64) (MMRSnapshot, error) {
	snapshot := MMRSnapshot{}
	err := meddler.QueryRow(
		s.db, &snapshot, `SELECT * FROM mmr_batches WHERE batch_index = $1;`, batchIndex,
	)
	if err != nil {
		if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
			return MMRSnapshot{BatchIndex: batchIndex}, nil
		}
		return MMRSnapshot{}, err
	}
	return snapshot, nil
}

// GetLatestMMRBlock returns the high-water mark of block heights incorporated
// into accepted batch updates.
func (s *MMRStorage) GetLatestMMRBlock(ctx context.Context) (uint64, error) {
	state, err := getGlobalState(s.db)
	if err != nil {
		return 0, err
	}
	return state.LatestMMRBlock, nil
}

// SubscribeMMRStateUpdated returns a channel that receives an event per
// committed batch update.
func (s *MMRStorage) SubscribeMMRStateUpdated(subscriberName string) <-chan EventMMRStateUpdated {
	return s.updateEvents.Subscribe(subscriberName)
}

// SubscribeLatestBlockhashFromL1 returns a channel that receives an event per
// committed L1 reference blockhash.
func (s *MMRStorage) SubscribeLatestBlockhashFromL1(
	subscriberName string,
) <-chan EventLatestBlockhashFromL1Stored {
	return s.blockhashEvents.Subscribe(subscriberName)
}

func getGlobalState(q db.Querier) (*globalState, error) {
	state := &globalState{}
	if err := meddler.QueryRow(q, state, `SELECT * FROM global_state WHERE id = 1;`); err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return state, nil
}
