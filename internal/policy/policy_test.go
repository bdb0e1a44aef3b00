package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/officehub/office-management-api/internal/models"
)

var (
	admin    = Actor{UserID: 1, Role: models.RoleAdmin}
	manager  = Actor{UserID: 2, Role: models.RoleManager, Department: "Finance"}
	employee = Actor{UserID: 3, Role: models.RoleEmployee, Department: "IT"}
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Announcement{},
		&models.Asset{},
		&models.Document{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestAnnouncementVisibilityMatrix(t *testing.T) {
	all := models.Announcement{Visibility: models.VisibilityAll}
	mgr := models.Announcement{Visibility: models.VisibilityManager}
	emp := models.Announcement{Visibility: models.VisibilityEmployee}

	require.True(t, CanViewAnnouncement(admin, all))
	require.True(t, CanViewAnnouncement(admin, mgr))
	require.True(t, CanViewAnnouncement(admin, emp))

	require.True(t, CanViewAnnouncement(manager, all))
	require.True(t, CanViewAnnouncement(manager, mgr))
	require.False(t, CanViewAnnouncement(manager, emp))

	require.True(t, CanViewAnnouncement(employee, all))
	require.False(t, CanViewAnnouncement(employee, mgr))
	require.True(t, CanViewAnnouncement(employee, emp))
}

func TestAnnouncementEditRequiresCreatorOrAdmin(t *testing.T) {
	ann := models.Announcement{CreatedByID: manager.UserID}

	require.True(t, CanEditAnnouncement(manager, ann))
	require.True(t, CanEditAnnouncement(admin, ann))

	otherManager := Actor{UserID: 99, Role: models.RoleManager}
	require.False(t, CanEditAnnouncement(otherManager, ann))
	require.False(t, CanEditAnnouncement(employee, ann))

	require.False(t, CanDeleteAnnouncement(manager))
	require.True(t, CanDeleteAnnouncement(admin))
}

func TestAssetScopeMatchesPredicate(t *testing.T) {
	db := openTestDB(t)

	otherID := uint64(42)
	assets := []models.Asset{
		{Name: "laptop", Status: models.AssetStatusInUse, AssignedToID: &employee.UserID},
		{Name: "monitor", Status: models.AssetStatusAvailable},
		{Name: "phone", Status: models.AssetStatusInUse, AssignedToID: &otherID},
		{Name: "printer", Status: models.AssetStatusMaintenance},
	}
	require.NoError(t, db.Create(&assets).Error)

	for _, actor := range []Actor{admin, manager, employee} {
		var visible []models.Asset
		require.NoError(t, db.Scopes(AssetScope(actor)).Find(&visible).Error)

		seen := make(map[uint64]bool, len(visible))
		for _, a := range visible {
			seen[a.ID] = true
		}
		for _, a := range assets {
			require.Equal(t, CanViewAsset(actor, a), seen[a.ID],
				"asset %q visibility for role %s", a.Name, actor.Role)
		}
	}
}

func TestEmployeeAssetListOnlyOwnOrAvailable(t *testing.T) {
	db := openTestDB(t)

	otherID := uint64(42)
	assets := []models.Asset{
		{Name: "mine", Status: models.AssetStatusInUse, AssignedToID: &employee.UserID},
		{Name: "free", Status: models.AssetStatusAvailable},
		{Name: "theirs", Status: models.AssetStatusInUse, AssignedToID: &otherID},
		{Name: "broken", Status: models.AssetStatusMaintenance},
	}
	require.NoError(t, db.Create(&assets).Error)

	var visible []models.Asset
	require.NoError(t, db.Scopes(AssetScope(employee)).Find(&visible).Error)

	require.Len(t, visible, 2)
	for _, a := range visible {
		ownAsset := a.AssignedToID != nil && *a.AssignedToID == employee.UserID
		require.True(t, ownAsset || a.Status == models.AssetStatusAvailable)
	}
}

func TestDocumentScopeMatchesPredicate(t *testing.T) {
	db := openTestDB(t)

	docs := []models.Document{
		{Title: "handbook", StoredName: "a", FileName: "a.pdf", Department: "General", AccessLevel: models.AccessPublic, UploadedByID: 1},
		{Title: "it-runbook", StoredName: "b", FileName: "b.pdf", Department: "IT", AccessLevel: models.AccessPrivate, UploadedByID: 1},
		{Title: "budget", StoredName: "c", FileName: "c.pdf", Department: "Finance", AccessLevel: models.AccessPrivate, UploadedByID: 1},
	}
	require.NoError(t, db.Create(&docs).Error)

	noProfile := Actor{UserID: 7, Role: models.RoleEmployee}

	for _, actor := range []Actor{admin, manager, employee, noProfile} {
		var visible []models.Document
		require.NoError(t, db.Scopes(DocumentScope(actor)).Find(&visible).Error)

		seen := make(map[uint64]bool, len(visible))
		for _, d := range visible {
			seen[d.ID] = true
		}
		for _, d := range docs {
			require.Equal(t, CanViewDocument(actor, d), seen[d.ID],
				"document %q visibility for actor %+v", d.Title, actor)
		}
	}
}

func TestPrivateDocumentRequiresDepartmentMatch(t *testing.T) {
	doc := models.Document{Department: "HR", AccessLevel: models.AccessPrivate}

	hr := Actor{UserID: 10, Role: models.RoleEmployee, Department: "HR"}
	it := Actor{UserID: 11, Role: models.RoleEmployee, Department: "IT"}

	require.True(t, CanViewDocument(hr, doc))
	require.False(t, CanViewDocument(it, doc))
	require.True(t, CanViewDocument(admin, doc))
}

func TestTaskScopeMatchesPredicate(t *testing.T) {
	db := openTestDB(t)

	otherID := uint64(42)
	tasks := []models.Task{
		{ProjectID: 1, Title: "assigned to employee", AssignedToID: &employee.UserID},
		{ProjectID: 1, Title: "assigned elsewhere", AssignedToID: &otherID},
		{ProjectID: 1, Title: "unassigned"},
	}
	require.NoError(t, db.Create(&tasks).Error)

	for _, actor := range []Actor{admin, manager, employee} {
		var visible []models.Task
		require.NoError(t, db.Scopes(TaskScope(actor)).Find(&visible).Error)

		seen := make(map[uint64]bool, len(visible))
		for _, task := range visible {
			seen[task.ID] = true
		}
		for _, task := range tasks {
			require.Equal(t, CanViewTask(actor, task), seen[task.ID],
				"task %q visibility for role %s", task.Title, actor.Role)
		}
	}
}

func TestRoleGates(t *testing.T) {
	require.True(t, CanManageAssets(admin))
	require.False(t, CanManageAssets(manager))

	require.True(t, CanClock(employee))
	require.False(t, CanClock(manager))
	require.False(t, CanClock(admin))

	require.True(t, CanRequestLeave(employee))
	require.False(t, CanRequestLeave(admin))
	require.True(t, CanDecideLeave(manager))
	require.False(t, CanDecideLeave(employee))

	require.True(t, CanUploadDocument(manager))
	require.False(t, CanUploadDocument(employee))
	require.True(t, CanDeleteDocument(admin))
	require.False(t, CanDeleteDocument(manager))

	require.True(t, CanManageProjects(manager))
	require.False(t, CanManageProjects(employee))
	require.True(t, CanReassignTask(admin))
	require.True(t, CanReassignTask(manager))
	require.False(t, CanReassignTask(employee))
}
