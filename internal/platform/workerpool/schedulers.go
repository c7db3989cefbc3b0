// internal/platform/workerpool/schedulers.go
package workerpool

import (
	"sort"
)

// FIFOScheduler no reordena (First In First Out).
type FIFOScheduler struct{}

// NewFIFOScheduler crea un scheduler FIFO.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Order retorna los índices en el orden original.
func (s *FIFOScheduler) Order(tasks []Task) []int {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	return order
}

// Name retorna el nombre del scheduler.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}

// WeightedScheduler despacha primero las tareas de mayor peso.
type WeightedScheduler struct{}

// NewWeightedScheduler crea un scheduler basado en peso.
func NewWeightedScheduler() *WeightedScheduler {
	return &WeightedScheduler{}
}

// Order ordena por peso descendente; a igual peso, orden de envío.
func (s *WeightedScheduler) Order(tasks []Task) []int {
	order := NewFIFOScheduler().Order(tasks)

	sort.SliceStable(order, func(i, j int) bool {
		return tasks[order[i]].Weight() > tasks[order[j]].Weight()
	})

	return order
}

// Name retorna el nombre del scheduler.
func (s *WeightedScheduler) Name() string {
	return "weighted"
}
