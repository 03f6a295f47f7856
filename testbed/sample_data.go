package main

import (
	"fmt"

	"tableflip.dev/weekly/pkg/todo"
)

func sampleWeek() []todo.Task {
	tasks := []todo.Task{
		{ID: "1", Text: "Olahraga pagi", Day: todo.Senin, Completed: true},
		{ID: "2", Text: "Rapat tim jam 10", Day: todo.Senin},
		{ID: "3", Text: "Kirim laporan mingguan ke atasan sebelum makan siang supaya bisa direview", Day: todo.Senin},
		{ID: "4", Text: "Beli sayur", Day: todo.Senin},
		{ID: "5", Text: "Bayar listrik", Day: todo.Senin},
		{ID: "6", Text: "Telepon ibu", Day: todo.Senin},
		{ID: "7", Text: "Servis motor", Day: todo.Rabu},
		{ID: "8", Text: "Belajar Go", Day: todo.Kamis, Completed: true},
		{ID: "9", Text: "Cuci mobil", Day: todo.Sabtu},
		{ID: "10", Text: "Piknik", Day: todo.Minggu},
	}
	return tasks
}

func manyTasks(day todo.Day, n int) []todo.Task {
	out := make([]todo.Task, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, todo.Task{
			ID:        fmt.Sprintf("%s-%d", day, i),
			Text:      fmt.Sprintf("Tugas %d", i+1),
			Day:       day,
			Completed: i%3 == 0,
		})
	}
	return out
}
