package seeder

import "github.com/Mbaimbai1985/taskmanagement/internal/domain"

// Account is a demo login created by the seeder.
type Account struct {
	Username string
	Email    string
	Password string
	Role     domain.UserRole
}

// DemoAccounts are created in this order. The first one is the admin.
var DemoAccounts = []Account{
	{Username: "admin", Email: "admin@example.com", Password: "admin123", Role: domain.UserRoleAdmin},
	{Username: "user", Email: "user@example.com", Password: "user123", Role: domain.UserRoleUser},
	{Username: "alice", Email: "alice@example.com", Password: "alice123", Role: domain.UserRoleUser},
	{Username: "bob", Email: "bob@example.com", Password: "bob123", Role: domain.UserRoleUser},
}

type demoTask struct {
	title       string
	description string
	status      domain.TaskStatus
	priority    domain.Priority
	creator     string
	assignee    string
}

var demoTasks = []demoTask{
	{"Set up project infrastructure", "Initialize the project repository, set up CI/CD pipeline, and configure development environment", domain.TaskStatusDone, domain.PriorityHigh, "admin", "admin"},
	{"Design user authentication system", "Create wireframes and design mockups for login, registration, and user profile pages", domain.TaskStatusInProgress, domain.PriorityHigh, "admin", "alice"},
	{"Implement task management API", "Develop REST API endpoints for creating, reading, updating, and deleting tasks", domain.TaskStatusDone, domain.PriorityHigh, "admin", "bob"},
	{"Create responsive frontend layout", "Build responsive components for the task dashboard with a mobile-first approach", domain.TaskStatusInProgress, domain.PriorityMedium, "admin", "alice"},
	{"Set up database schema", "Design and implement database tables for users, tasks, and related entities", domain.TaskStatusDone, domain.PriorityHigh, "admin", "bob"},
	{"Implement real-time notifications", "Add WebSocket support for real-time task updates and notifications", domain.TaskStatusTodo, domain.PriorityMedium, "admin", "user"},
	{"Write unit tests", "Create unit tests for all services and handlers", domain.TaskStatusTodo, domain.PriorityMedium, "admin", "alice"},
	{"Optimize database queries", "Review and optimize slow database queries, add proper indexes", domain.TaskStatusTodo, domain.PriorityLow, "user", "bob"},
	{"Create user documentation", "Write the user guide and API documentation", domain.TaskStatusInProgress, domain.PriorityLow, "alice", "user"},
	{"Deploy to production", "Set up production environment and deploy the application", domain.TaskStatusTodo, domain.PriorityHigh, "admin", "admin"},
}

type demoComment struct {
	task   int // index into demoTasks
	author string
	body   string
}

// Every author is the creator or assignee of the task, or the admin.
var demoComments = []demoComment{
	{0, "admin", "Great work on setting up the infrastructure! The CI/CD pipeline is working perfectly."},
	{1, "alice", "I'm working on the authentication mockups. Should have the first draft ready by tomorrow."},
	{1, "admin", "Looks good! Make sure to include 2FA in the design."},
	{2, "bob", "API implementation is complete. All endpoints are tested and documented."},
	{3, "alice", "Working on mobile responsiveness. The dashboard looks great on tablets now!"},
	{4, "bob", "Database schema is finalized. Added proper indexes for better performance."},
	{5, "user", "I'll start working on this next week after finishing the documentation."},
	{8, "user", "Documentation is about 70% complete. Focusing on the API reference section now."},
	{8, "alice", "Thanks! Let me know if you need help with the screenshots for the user guide."},
}
