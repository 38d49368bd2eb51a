package platform

import (
	"sync"
	"time"
)

// Scheduler 遅延実行と非同期処理の実行方法
type Scheduler interface {
	// After は d 経過後に fn を実行する
	After(d time.Duration, fn func())
	// Go は fn を呼び出し元をブロックせずに実行する
	Go(fn func())
}

type timerScheduler struct{}

// NewScheduler タイマーとgoroutineで実行するSchedulerを作成
func NewScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

func (timerScheduler) Go(fn func()) {
	go fn()
}

// ScheduledTask ManualScheduler に積まれた処理
type ScheduledTask struct {
	Delay    time.Duration
	Deferred bool
	fn       func()
}

// ManualScheduler 積まれた処理を呼び出し側が明示的に実行するScheduler
// 非同期処理の完了順を制御したい場面で使う
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []ScheduledTask
}

// NewManualScheduler 新しいManualSchedulerを作成
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.push(ScheduledTask{Delay: d, Deferred: true, fn: fn})
}

func (s *ManualScheduler) Go(fn func()) {
	s.push(ScheduledTask{fn: fn})
}

func (s *ManualScheduler) push(task ScheduledTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

// Pending 未実行の処理の一覧（実行はしない）
func (s *ManualScheduler) Pending() []ScheduledTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]ScheduledTask, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Run i 番目の未実行処理を取り出して実行する
func (s *ManualScheduler) Run(i int) bool {
	s.mu.Lock()
	if i < 0 || i >= len(s.tasks) {
		s.mu.Unlock()
		return false
	}
	task := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.mu.Unlock()

	task.fn()
	return true
}

// RunAll 積まれた処理が無くなるまで先頭から実行する（実行中に積まれた処理も含む）
func (s *ManualScheduler) RunAll() int {
	n := 0
	for s.Run(0) {
		n++
	}
	return n
}
