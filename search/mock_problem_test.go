package search_test

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockProblem is a gomock double for search.Problem[string, string].
type MockProblem struct {
	ctrl     *gomock.Controller
	recorder *MockProblemMockRecorder
}

// MockProblemMockRecorder records expected calls on MockProblem.
type MockProblemMockRecorder struct {
	mock *MockProblem
}

func NewMockProblem(ctrl *gomock.Controller) *MockProblem {
	mock := &MockProblem{ctrl: ctrl}
	mock.recorder = &MockProblemMockRecorder{mock}
	return mock
}

func (m *MockProblem) EXPECT() *MockProblemMockRecorder { return m.recorder }

func (m *MockProblem) InitialState() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InitialState")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockProblemMockRecorder) InitialState() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InitialState", reflect.TypeOf((*MockProblem)(nil).InitialState))
}

func (m *MockProblem) Actions(state string) []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Actions", state)
	ret0, _ := ret[0].([]string)
	return ret0
}

func (mr *MockProblemMockRecorder) Actions(state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Actions", reflect.TypeOf((*MockProblem)(nil).Actions), state)
}

func (m *MockProblem) Result(state, action string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Result", state, action)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProblemMockRecorder) Result(state, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Result", reflect.TypeOf((*MockProblem)(nil).Result), state, action)
}

func (m *MockProblem) StepCost(state, action, next string) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StepCost", state, action, next)
	ret0, _ := ret[0].(float64)
	return ret0
}

func (mr *MockProblemMockRecorder) StepCost(state, action, next any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StepCost", reflect.TypeOf((*MockProblem)(nil).StepCost), state, action, next)
}

func (m *MockProblem) GoalTest(state string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GoalTest", state)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockProblemMockRecorder) GoalTest(state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GoalTest", reflect.TypeOf((*MockProblem)(nil).GoalTest), state)
}

func (m *MockProblem) Heuristic(state string) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Heuristic", state)
	ret0, _ := ret[0].(float64)
	return ret0
}

func (mr *MockProblemMockRecorder) Heuristic(state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Heuristic", reflect.TypeOf((*MockProblem)(nil).Heuristic), state)
}
