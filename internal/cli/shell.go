package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"go.uber.org/zap"
)

type TaskService interface {
	AddTask(ctx context.Context, title, description string, dueDate time.Time, priority string) (*task.Task, error)
	CompleteTask(ctx context.Context, id int) (*task.Task, error)
	DeleteTask(ctx context.Context, id int) error
	ListSorted(ctx context.Context) []*task.Task
	ListFiltered(ctx context.Context, kind service.FilterKind) []*task.Task
	Persist(ctx context.Context) error
}

// Shell - интерактивное меню поверх сервиса. Всё чтение идёт через один
// сканер, вывод - в переданный writer, чтобы оболочку можно было гонять
// в тестах на строковых буферах.
type Shell struct {
	svc TaskService
	in  *bufio.Scanner
	out io.Writer
}

func NewShell(svc TaskService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run крутит главное меню до выбора выхода или конца ввода. В обоих
// случаях перед завершением список сохраняется.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n--- Умный список дел ---")
		fmt.Fprintln(s.out, "1. Добавить задачу")
		fmt.Fprintln(s.out, "2. Отметить задачу выполненной")
		fmt.Fprintln(s.out, "3. Удалить задачу")
		fmt.Fprintln(s.out, "4. Показать все задачи")
		fmt.Fprintln(s.out, "5. Фильтры")
		fmt.Fprintln(s.out, "6. Выход")
		fmt.Fprint(s.out, "Выберите пункт: ")

		line, ok := s.readLine()
		if !ok {
			// конец ввода равносилен выходу
			return s.exit(ctx)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Неверный ввод. Введите число.")
			continue
		}

		switch choice {
		case 1:
			s.addTask(ctx)
		case 2:
			s.completeTask(ctx)
		case 3:
			s.deleteTask(ctx)
		case 4:
			renderTasks(s.out, s.svc.ListSorted(ctx))
		case 5:
			s.filterMenu(ctx)
		case 6:
			return s.exit(ctx)
		default:
			fmt.Fprintln(s.out, "Нет такого пункта! Выберите число от 1 до 6.")
		}
	}
}

func (s *Shell) exit(ctx context.Context) error {
	if err := s.svc.Persist(ctx); err != nil {
		fmt.Fprintln(s.out, "Не удалось сохранить задачи:", err)
		return err
	}
	fmt.Fprintln(s.out, "Выходим...")
	return nil
}

func (s *Shell) addTask(ctx context.Context) {
	fmt.Fprint(s.out, "Название: ")
	title, ok := s.readLine()
	if !ok {
		return
	}

	fmt.Fprint(s.out, "Описание: ")
	description, ok := s.readLine()
	if !ok {
		return
	}

	// запятая - разделитель файла и не экранируется: предупреждаем,
	// но не запрещаем
	if strings.Contains(title, ",") || strings.Contains(description, ",") {
		fmt.Fprintln(s.out, "Внимание: запятая в тексте сломает строку в файле задач.")
	}

	var dueDate time.Time
	for {
		fmt.Fprint(s.out, "Срок (ГГГГ-ММ-ДД): ")
		raw, ok := s.readLine()
		if !ok {
			return
		}
		parsed, err := time.Parse(task.DateLayout, raw)
		if err != nil {
			fmt.Fprintln(s.out, "Неверный формат даты. Используйте ГГГГ-ММ-ДД.")
			continue
		}
		dueDate = parsed
		break
	}

	var priority string
	for {
		fmt.Fprint(s.out, "Приоритет (High/Medium/Low): ")
		raw, ok := s.readLine()
		if !ok {
			return
		}
		if _, err := task.ParsePriority(raw); err != nil {
			fmt.Fprintln(s.out, "Неверный приоритет. Введите High, Medium или Low.")
			continue
		}
		priority = raw
		break
	}

	added, err := s.svc.AddTask(ctx, title, description, dueDate, priority)
	if err != nil {
		fmt.Fprintln(s.out, "Не удалось добавить задачу:", err)
		return
	}
	fmt.Fprintf(s.out, "Задача добавлена, id %d!\n", added.ID)
}

func (s *Shell) completeTask(ctx context.Context) {
	id, ok := s.readID("Введите id задачи для выполнения: ")
	if !ok {
		return
	}

	_, err := s.svc.CompleteTask(ctx, id)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "Задача %d отмечена выполненной!\n", id)
}

func (s *Shell) deleteTask(ctx context.Context) {
	id, ok := s.readID("Введите id задачи для удаления: ")
	if !ok {
		return
	}

	if err := s.svc.DeleteTask(ctx, id); err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "Задача %d удалена.\n", id)
}

func (s *Shell) filterMenu(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, "\n--- Фильтры ---")
		fmt.Fprintln(s.out, "1. Ожидающие задачи")
		fmt.Fprintln(s.out, "2. Выполненные задачи")
		fmt.Fprintln(s.out, "3. Срок сегодня или завтра")
		fmt.Fprintln(s.out, "4. Просроченные задачи")
		fmt.Fprintln(s.out, "5. Назад")
		fmt.Fprint(s.out, "Выберите фильтр: ")

		line, ok := s.readLine()
		if !ok {
			return
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Неверный ввод. Введите число от 1 до 5.")
			continue
		}

		switch choice {
		case 1:
			renderTasks(s.out, s.svc.ListFiltered(ctx, service.FilterPending))
		case 2:
			renderTasks(s.out, s.svc.ListFiltered(ctx, service.FilterCompleted))
		case 3:
			renderTasks(s.out, s.svc.ListFiltered(ctx, service.FilterDueSoon))
		case 4:
			renderTasks(s.out, s.svc.ListFiltered(ctx, service.FilterOverdue))
		case 5:
			return
		default:
			fmt.Fprintln(s.out, "Нет такого фильтра! Выберите число от 1 до 5.")
		}
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) readID(prompt string) (int, bool) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Неверный ввод. Введите числовой id задачи.")
		return 0, false
	}
	return id, true
}

func (s *Shell) reportError(err error) {
	var busErr *service.BusinessError
	if errors.As(err, &busErr) {
		fmt.Fprintln(s.out, busErr.Message)
		return
	}
	logger.Error("CLI: Ошибка операции", err, zap.String("source", "shell"))
	fmt.Fprintln(s.out, "Ошибка:", err)
}
