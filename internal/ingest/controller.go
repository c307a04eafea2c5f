package ingest

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"refboard/internal/decode"
	"refboard/internal/layout"
	"refboard/internal/model"
	"refboard/internal/scan"
)

// backdropIDPrefix keeps a folder's backdrop identity stable across the
// incremental re-emits while the folder loads.
const backdropIDPrefix = "backdrop:"

// Controller orchestrates ingestion jobs. All callbacks fire on job
// goroutines; the UI layer is responsible for hopping to the interactive
// thread (fyne.Do) before touching the scene.
type Controller struct {
	jobs      map[string]*jobState
	jobsMutex sync.RWMutex
	pool      *decode.Pool
	origins   *layout.OriginAllocator

	onPlace    func(jobID string, tile *model.ImageTile)
	onBackdrop func(jobID string, backdrop *model.FolderBackdrop)
	onProgress func(jobID string, fraction float64)
	onDone     func(job model.IngestionJob)
}

// jobState pairs the job record with its cancellation flag. The flag is
// atomic so the UI can cancel without taking the jobs lock.
type jobState struct {
	job       model.IngestionJob
	cancelled atomic.Bool
}

// NewController creates a controller running jobs against the given decode
// pool and origin allocator.
func NewController(pool *decode.Pool, origins *layout.OriginAllocator) *Controller {
	return &Controller{
		jobs:    make(map[string]*jobState),
		pool:    pool,
		origins: origins,
	}
}

// SetPlaceCallback sets the callback for each placed tile.
func (c *Controller) SetPlaceCallback(callback func(jobID string, tile *model.ImageTile)) {
	c.onPlace = callback
}

// SetBackdropCallback sets the callback for backdrop inserts and resizes.
func (c *Controller) SetBackdropCallback(callback func(jobID string, backdrop *model.FolderBackdrop)) {
	c.onBackdrop = callback
}

// SetProgressCallback sets the callback for aggregate progress updates.
// It fires at most once per completed decode.
func (c *Controller) SetProgressCallback(callback func(jobID string, fraction float64)) {
	c.onProgress = callback
}

// SetDoneCallback sets the callback for terminal job events. The job value
// is a snapshot; Failed carries the count for the "N files failed" summary.
func (c *Controller) SetDoneCallback(callback func(job model.IngestionJob)) {
	c.onDone = callback
}

// Load starts an ingestion job for the folder. The grid configuration is
// captured here and stays fixed for the job's lifetime. Returns an error if
// the folder already has an active job.
func (c *Controller) Load(folder string, grid layout.Grid) (model.IngestionJob, error) {
	c.jobsMutex.Lock()
	defer c.jobsMutex.Unlock()

	for _, js := range c.jobs {
		if js.job.Folder == folder && !js.job.Status.IsTerminal() {
			return model.IngestionJob{}, fmt.Errorf("folder is already loading: %s", folder)
		}
	}

	js := &jobState{
		job: model.IngestionJob{
			ID:        uuid.NewString(),
			Folder:    folder,
			Status:    model.JobStatusIdle,
			StartedAt: time.Now(),
		},
	}
	c.jobs[js.job.ID] = js

	go c.run(js, grid)

	return js.job, nil
}

// GetJob returns a snapshot of a job by id.
func (c *Controller) GetJob(id string) (model.IngestionJob, bool) {
	c.jobsMutex.RLock()
	defer c.jobsMutex.RUnlock()
	js, exists := c.jobs[id]
	if !exists {
		return model.IngestionJob{}, false
	}
	return js.job, true
}

// JobForFolder returns the most recent non-terminal job for a folder.
func (c *Controller) JobForFolder(folder string) (model.IngestionJob, bool) {
	c.jobsMutex.RLock()
	defer c.jobsMutex.RUnlock()
	for _, js := range c.jobs {
		if js.job.Folder == folder && !js.job.Status.IsTerminal() {
			return js.job, true
		}
	}
	return model.IngestionJob{}, false
}

// Cancel requests cancellation of a job. Cancellation is cooperative: the
// job stops submitting new work immediately and drops in-flight results as
// they drain; the terminal Cancelled event fires once the drain is done.
func (c *Controller) Cancel(id string) error {
	c.jobsMutex.Lock()
	defer c.jobsMutex.Unlock()

	js, exists := c.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}
	if js.job.Status.IsTerminal() {
		return fmt.Errorf("job is not active: %s", js.job.Status)
	}

	js.cancelled.Store(true)
	js.job.Status = model.JobStatusCancelling
	return nil
}

// CancelAll cancels every active job. This backs Clear Canvas and Reset
// Canvas while a load is still running.
func (c *Controller) CancelAll() {
	c.jobsMutex.Lock()
	defer c.jobsMutex.Unlock()

	for _, js := range c.jobs {
		if !js.job.Status.IsTerminal() {
			js.cancelled.Store(true)
			js.job.Status = model.JobStatusCancelling
		}
	}
}

// run executes one job: scan, submit, consume in scan order, finish.
func (c *Controller) run(js *jobState, grid layout.Grid) {
	c.setStatus(js, model.JobStatusScanning)

	paths, err := scan.Scan(c.folder(js))
	if err != nil {
		// Unreadable root aborts the whole job; no progress was reported.
		c.finish(js, model.JobStatusFailed, err)
		return
	}

	if js.cancelled.Load() {
		c.finish(js, model.JobStatusCancelled, nil)
		return
	}

	c.setTotal(js, len(paths))

	if len(paths) == 0 {
		// Zero matches is a success, not an error.
		c.setStatus(js, model.JobStatusCompleted)
		c.emitProgress(js)
		c.finish(js, model.JobStatusCompleted, nil)
		return
	}

	c.setStatus(js, model.JobStatusDecoding)

	origin := c.origins.Reserve(grid)
	engine := layout.NewEngine(c.folder(js), origin, grid)

	// Buffered to the batch size so draining workers never block on a
	// cancelled consumer.
	results := make(chan model.DecodeResult, len(paths))

	submitted := 0
	for i, p := range paths {
		if js.cancelled.Load() {
			break
		}
		c.pool.Submit(decode.Task{
			JobID:   c.id(js),
			Index:   i,
			Source:  p,
			Results: results,
		})
		submitted++
	}

	for consumed := 0; consumed < submitted; consumed++ {
		r := <-results

		if js.cancelled.Load() {
			// In-flight decode finished after cancellation: drop it, the
			// bitmap is released with the result.
			log.Printf("job %s: dropping decode result for %s after cancellation", r.JobID, r.Source.Path)
			continue
		}

		c.recordResult(js, r)
		c.forward(js, engine, r)
		c.emitProgress(js)
	}

	if js.cancelled.Load() {
		c.finish(js, model.JobStatusCancelled, nil)
		return
	}
	c.finish(js, model.JobStatusCompleted, nil)
}

// forward runs the result through the reorder buffer and delivers every
// placement that became emittable, re-emitting the backdrop after each one.
func (c *Controller) forward(js *jobState, engine *layout.Engine, r model.DecodeResult) {
	folder := c.folder(js)
	jobID := c.id(js)

	for _, p := range engine.Offer(r) {
		size := p.Cell
		if p.Image != nil {
			size = model.Size{Width: float32(p.Image.Width), Height: float32(p.Image.Height)}
		}

		tile := &model.ImageTile{
			ID:     uuid.NewString(),
			Folder: folder,
			Source: p.Source,
			Image:  p.Image,
			Pos:    p.Pos,
			Size:   size,
		}
		if c.onPlace != nil {
			c.onPlace(jobID, tile)
		}

		if rect, ok := engine.Backdrop(); ok && c.onBackdrop != nil {
			c.onBackdrop(jobID, &model.FolderBackdrop{
				ID:     backdropIDPrefix + folder,
				Folder: folder,
				Label:  folderLabel(folder),
				Rect:   rect,
			})
		}
	}
}

func (c *Controller) setStatus(js *jobState, status model.JobStatus) {
	c.jobsMutex.Lock()
	defer c.jobsMutex.Unlock()
	// A cancel may have won the race; never overwrite Cancelling with a
	// forward transition.
	if js.job.Status == model.JobStatusCancelling && !status.IsTerminal() {
		return
	}
	js.job.Status = status
}

func (c *Controller) setTotal(js *jobState, total int) {
	c.jobsMutex.Lock()
	defer c.jobsMutex.Unlock()
	js.job.TotalCount = total
}

func (c *Controller) recordResult(js *jobState, r model.DecodeResult) {
	c.jobsMutex.Lock()
	defer c.jobsMutex.Unlock()
	js.job.Completed++
	if r.Failed() {
		js.job.Failed++
		log.Printf("job %s: failed to decode %s: %v", js.job.ID, r.Source.Path, r.Err)
	}
}

func (c *Controller) emitProgress(js *jobState) {
	if c.onProgress == nil {
		return
	}
	c.jobsMutex.RLock()
	id := js.job.ID
	fraction := js.job.Fraction()
	c.jobsMutex.RUnlock()
	c.onProgress(id, fraction)
}

func (c *Controller) finish(js *jobState, status model.JobStatus, err error) {
	c.jobsMutex.Lock()
	js.job.Status = status
	if err != nil {
		js.job.LastError = err.Error()
	}
	js.job.FinishedAt = time.Now()
	snapshot := js.job
	c.jobsMutex.Unlock()

	if c.onDone != nil {
		c.onDone(snapshot)
	}
}

// folderLabel returns the display label for a folder grouping: the base
// name, or the full path when the base is not meaningful.
func folderLabel(folder string) string {
	base := filepath.Base(folder)
	if base == "." || base == string(filepath.Separator) {
		return folder
	}
	return base
}

func (c *Controller) id(js *jobState) string {
	c.jobsMutex.RLock()
	defer c.jobsMutex.RUnlock()
	return js.job.ID
}

func (c *Controller) folder(js *jobState) string {
	c.jobsMutex.RLock()
	defer c.jobsMutex.RUnlock()
	return js.job.Folder
}
