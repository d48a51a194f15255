package controllers

import (
	"context"
	"errors"
	"sync"
	"time"

	"crit-server/models"
	"crit-server/utils"
)

type MockBoardRepository struct {
	data map[string]models.Board
	mu   sync.RWMutex
}

func NewMockBoardRepository() *MockBoardRepository {
	return &MockBoardRepository{data: make(map[string]models.Board)}
}

func (m *MockBoardRepository) SaveBoard(board models.Board) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if board.Title == "fail" {
		return "", errors.New("failed to save board")
	}
	if board.ID == "" {
		board.ID = utils.GenerateID()
		board.CreatedAt = time.Now()
	}
	board.UpdatedAt = time.Now()
	m.data[board.ID] = board
	return board.ID, nil
}

func (m *MockBoardRepository) FindBoardByID(id string) (models.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	board, ok := m.data[id]
	if !ok {
		return models.Board{}, errors.New("board not found")
	}
	return board, nil
}

func (m *MockBoardRepository) FindBoardsByOwnerID(ownerID string) ([]models.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var boards []models.Board
	for _, board := range m.data {
		if board.OwnerID == ownerID {
			boards = append(boards, board)
		}
	}
	return boards, nil
}

func (m *MockBoardRepository) UpdateBoardTitle(id, newTitle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	board, ok := m.data[id]
	if !ok {
		return errors.New("board not found")
	}
	board.Title = newTitle
	m.data[id] = board
	return nil
}

func (m *MockBoardRepository) UpdateBoardVisibility(id, visibility string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	board, ok := m.data[id]
	if !ok {
		return errors.New("board not found")
	}
	board.Visibility = visibility
	m.data[id] = board
	return nil
}

func (m *MockBoardRepository) DeleteBoardByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[id]; !ok {
		return errors.New("board not found")
	}
	delete(m.data, id)
	return nil
}

type MockElementRepository struct {
	data map[string]models.Element
	mu   sync.RWMutex
}

func NewMockElementRepository() *MockElementRepository {
	return &MockElementRepository{data: make(map[string]models.Element)}
}

func (m *MockElementRepository) SaveElement(element models.Element) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if element.Content == "fail" {
		return "", errors.New("failed to save element")
	}
	if element.ID == "" {
		element.ID = utils.GenerateID()
		element.CreatedAt = time.Now()
	}
	element.UpdatedAt = time.Now()
	m.data[element.ID] = element
	return element.ID, nil
}

func (m *MockElementRepository) FindElementByID(id string) (models.Element, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	element, ok := m.data[id]
	if !ok {
		return models.Element{}, errors.New("element not found")
	}
	return element, nil
}

func (m *MockElementRepository) FindElementsByBoardID(boardID string) ([]models.Element, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var elements []models.Element
	for _, element := range m.data {
		if element.BoardID == boardID {
			elements = append(elements, element)
		}
	}
	return elements, nil
}

func (m *MockElementRepository) UpdateElement(id string, patch models.ElementPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	element, ok := m.data[id]
	if !ok {
		return errors.New("element not found")
	}
	if patch.X != nil {
		element.X = *patch.X
	}
	if patch.Y != nil {
		element.Y = *patch.Y
	}
	if patch.Width != nil {
		element.Width = *patch.Width
	}
	if patch.Height != nil {
		element.Height = *patch.Height
	}
	if patch.Rotation != nil {
		element.Rotation = *patch.Rotation
	}
	if patch.ZIndex != nil {
		element.ZIndex = *patch.ZIndex
	}
	if patch.Content != nil {
		element.Content = *patch.Content
	}
	element.UpdatedAt = time.Now()
	m.data[id] = element
	return nil
}

func (m *MockElementRepository) DeleteElementByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[id]; !ok {
		return errors.New("element not found")
	}
	delete(m.data, id)
	return nil
}

func (m *MockElementRepository) DeleteElementsByBoardID(boardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, element := range m.data {
		if element.BoardID == boardID {
			delete(m.data, id)
		}
	}
	return nil
}

type MockCommentRepository struct {
	data map[string]models.Comment
	mu   sync.RWMutex
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{data: make(map[string]models.Comment)}
}

func (m *MockCommentRepository) SaveComment(comment models.Comment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if comment.Text == "fail" {
		return "", errors.New("failed to save comment")
	}
	comment.ID = utils.GenerateID()
	comment.CreatedAt = time.Now()
	m.data[comment.ID] = comment
	return comment.ID, nil
}

func (m *MockCommentRepository) FindCommentByID(id string) (models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comment, ok := m.data[id]
	if !ok {
		return models.Comment{}, errors.New("comment not found")
	}
	return comment, nil
}

func (m *MockCommentRepository) FindCommentsByBoardID(boardID string) ([]models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var comments []models.Comment
	for _, comment := range m.data {
		if comment.BoardID == boardID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) UpdateComment(id string, patch models.CommentPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	comment, ok := m.data[id]
	if !ok {
		return errors.New("comment not found")
	}
	if patch.Text != nil {
		comment.Text = *patch.Text
	}
	if patch.Category != nil {
		comment.Category = *patch.Category
	}
	if patch.IsTask != nil {
		comment.IsTask = *patch.IsTask
	}
	m.data[id] = comment
	return nil
}

func (m *MockCommentRepository) DeleteCommentByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[id]; !ok {
		return errors.New("comment not found")
	}
	delete(m.data, id)
	return nil
}

func (m *MockCommentRepository) DeleteCommentsByBoardID(boardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, comment := range m.data {
		if comment.BoardID == boardID {
			delete(m.data, id)
		}
	}
	return nil
}

type MockTaskRepository struct {
	data map[string]models.Task
	mu   sync.RWMutex
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{data: make(map[string]models.Task)}
}

func (m *MockTaskRepository) SaveTask(task models.Task) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if task.Text == "fail" {
		return "", errors.New("failed to save task")
	}
	task.ID = utils.GenerateID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	m.data[task.ID] = task
	return task.ID, nil
}

func (m *MockTaskRepository) FindTaskByID(id string) (models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.data[id]
	if !ok {
		return models.Task{}, errors.New("task not found")
	}
	return task, nil
}

func (m *MockTaskRepository) FindTasksByBoardID(boardID string) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tasks []models.Task
	for _, task := range m.data {
		if task.BoardID == boardID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (m *MockTaskRepository) UpdateTaskStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.data[id]
	if !ok {
		return errors.New("task not found")
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	m.data[id] = task
	return nil
}

func (m *MockTaskRepository) DeleteTaskByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[id]; !ok {
		return errors.New("task not found")
	}
	delete(m.data, id)
	return nil
}

func (m *MockTaskRepository) DeleteTasksByBoardID(boardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, task := range m.data {
		if task.BoardID == boardID {
			delete(m.data, id)
		}
	}
	return nil
}

type MockCritSessionRepository struct {
	data map[string]models.CritSession
	mu   sync.RWMutex
}

func NewMockCritSessionRepository() *MockCritSessionRepository {
	return &MockCritSessionRepository{data: make(map[string]models.CritSession)}
}

func (m *MockCritSessionRepository) SaveSession(session models.CritSession) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.ID = utils.GenerateID()
	session.CreatedAt = time.Now()
	m.data[session.ID] = session
	return session.ID, nil
}

func (m *MockCritSessionRepository) FindSessionByID(id string) (models.CritSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.data[id]
	if !ok {
		return models.CritSession{}, errors.New("session not found")
	}
	return session, nil
}

func (m *MockCritSessionRepository) FindSessionByBoardID(boardID string) (models.CritSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, session := range m.data {
		if session.BoardID == boardID {
			return session, nil
		}
	}
	return models.CritSession{}, errors.New("session not found")
}

func (m *MockCritSessionRepository) FindSessionByJoinCode(code string) (models.CritSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, session := range m.data {
		if session.JoinCode == code {
			return session, nil
		}
	}
	return models.CritSession{}, errors.New("session not found")
}

func (m *MockCritSessionRepository) ReactivateSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.data[id]
	if !ok {
		return errors.New("session not found")
	}
	session.Status = models.SessionActive
	session.EndedAt = nil
	m.data[id] = session
	return nil
}

func (m *MockCritSessionRepository) EndSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.data[id]
	if !ok {
		return errors.New("session not found")
	}
	now := time.Now()
	session.Status = models.SessionEnded
	session.EndedAt = &now
	m.data[id] = session
	return nil
}

func (m *MockCritSessionRepository) DeleteSessionsByBoardID(boardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.data {
		if session.BoardID == boardID {
			delete(m.data, id)
		}
	}
	return nil
}

type MockCriticRepository struct {
	critics map[string]map[string]models.Critic
	mu      sync.Mutex
}

func NewMockCriticRepository() *MockCriticRepository {
	return &MockCriticRepository{critics: make(map[string]map[string]models.Critic)}
}

func (m *MockCriticRepository) AddCritic(ctx context.Context, boardID string, c models.Critic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.critics[boardID]; !exists {
		m.critics[boardID] = make(map[string]models.Critic)
	}
	m.critics[boardID][c.ID] = c
	return nil
}

func (m *MockCriticRepository) GetCritics(ctx context.Context, boardID string) ([]models.Critic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	critics := make([]models.Critic, 0)
	for _, c := range m.critics[boardID] {
		critics = append(critics, c)
	}
	return critics, nil
}

func (m *MockCriticRepository) RemoveCritic(ctx context.Context, boardID, criticID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if critics, exists := m.critics[boardID]; exists {
		delete(critics, criticID)
		if len(critics) == 0 {
			delete(m.critics, boardID)
		}
	}
	return nil
}
