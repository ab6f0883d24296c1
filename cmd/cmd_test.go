package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samsonr/cli/configs"
	"github.com/samsonr/cli/controller"
	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/gateway"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type fakeBranch struct {
	branch string
}

func (f fakeBranch) CurrentBranch(ctx context.Context) (string, error) {
	if f.branch == "" {
		return "", errors.New("not a git repository")
	}
	return f.branch, nil
}

type deployCall struct {
	Path      string
	Reference string
}

func fakeSamson(t *testing.T, deploys *[]deployCall) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/projects.json":
			io.WriteString(w, `{"projects":[{"id":1,"name":"demo","last_deployed_at":"2024-01-01","last_deployed_by":"alice"},{"id":2,"name":"api"}]}`)
		case r.URL.Path == "/projects/42/stages.json":
			io.WriteString(w, `{"stages":[{"id":3,"name":"staging"},{"id":4,"name":"production"}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/projects/42/stages/4/deploys.json":
			var body struct {
				Deploy struct {
					Reference string `json:"reference"`
				} `json:"deploy"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			*deploys = append(*deploys, deployCall{Path: r.URL.Path, Reference: body.Deploy.Reference})
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"summary":"deploy #99 queued"}`)
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusUnprocessableEntity)
			io.WriteString(w, `{"status":422,"error":"invalid reference"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"status":404,"error":"not found"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SAMSON_TOKEN", "SAMSON_PROJECT_ID", "SAMSON_HOST"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func newHandler(t *testing.T, configBody string, host string, branch string) *Handler {
	t.Helper()
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if configBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(configBody), 0o600))
	}
	cfg, err := configs.New(context.Background(), path)
	require.NoError(t, err)

	return &Handler{
		cfg:         cfg,
		host:        host,
		ctrl:        controller.New(cfg, fakeBranch{branch: branch}, "", gateway.WithHost(host)),
		interactive: func() bool { return false },
		pickStage: func([]*entity.Stage) (*entity.Stage, error) {
			t.Fatal("stage picker used outside a terminal")
			return nil, nil
		},
	}
}

func newCommand(args []string, flags map[string]string) (*entity.CommandRequest, *bytes.Buffer) {
	c := &cobra.Command{Use: "test"}
	c.Flags().IntP("project-id", "p", 0, "")
	c.Flags().IntP("stage-id", "s", 0, "")
	for name, value := range flags {
		c.Flags().Set(name, value)
	}
	var out bytes.Buffer
	c.SetOut(&out)
	return &entity.CommandRequest{Cmd: c, Args: args}, &out
}

func TestSetupReadsGlobalFlags(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: file-token\nproject_id: 5\n"), 0o600))

	c := &cobra.Command{Use: "test"}
	c.Flags().String("config", "", "")
	c.Flags().String("token", "", "")
	c.Flags().String("host", "", "")
	c.Flags().Set("config", path)
	c.Flags().Set("token", "flag-token")
	c.Flags().Set("host", "https://samson.example.com")

	h := New()
	require.NoError(t, h.Setup(context.Background(), &entity.CommandRequest{Cmd: c}))

	require.Equal(t, "https://samson.example.com", h.host)
	require.Equal(t, path, h.cfg.Path())
	resolved, err := h.ctrl.ResolveConfig(h.token, nil)
	require.NoError(t, err)
	require.Equal(t, "flag-token", resolved.Token)
	require.Equal(t, 5, *resolved.ProjectID)
}

func TestProjectsPrintsTable(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\n", srv.URL, "")
	req, out := newCommand(nil, nil)

	require.NoError(t, h.Projects(context.Background(), req))

	require.Contains(t, out.String(), "demo")
	require.Contains(t, out.String(), "alice")
	require.Contains(t, out.String(), "api")
}

func TestProjectsWithoutToken(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "", srv.URL, "")
	req, _ := newCommand(nil, nil)

	err := h.Projects(context.Background(), req)
	require.True(t, errors.Is(err, errors.MissingToken))
}

func TestStagesUsesFlagProject(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\nproject_id: 7\n", srv.URL, "")
	req, out := newCommand(nil, map[string]string{"project-id": "42"})

	require.NoError(t, h.Stages(context.Background(), req))

	require.Contains(t, out.String(), "staging")
	require.Contains(t, out.String(), "production")
}

func TestStagesWithoutProject(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\n", srv.URL, "")
	req, _ := newCommand(nil, nil)

	err := h.Stages(context.Background(), req)
	require.True(t, errors.Is(err, errors.MissingProjectID))
}

func TestDeployCurrentBranch(t *testing.T) {
	var deploys []deployCall
	srv := fakeSamson(t, &deploys)
	h := newHandler(t, "token: abc\nproject_id: 42\n", srv.URL, "feature-x")
	req, out := newCommand(nil, map[string]string{"stage-id": "4"})

	require.NoError(t, h.Deploy(context.Background(), req))

	require.Equal(t, []deployCall{{Path: "/projects/42/stages/4/deploys.json", Reference: "feature-x"}}, deploys)
	require.Contains(t, out.String(), "deploy #99 queued")
	require.Contains(t, out.String(), "feature-x")
}

func TestDeployArgumentWins(t *testing.T) {
	var deploys []deployCall
	srv := fakeSamson(t, &deploys)
	h := newHandler(t, "token: abc\n", srv.URL, "feature-x")
	req, _ := newCommand([]string{"main"}, map[string]string{"stage-id": "4", "project-id": "42"})

	require.NoError(t, h.Deploy(context.Background(), req))

	require.Equal(t, "main", deploys[0].Reference)
}

func TestDeployRejected(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\nproject_id: 42\n", srv.URL, "")
	req, _ := newCommand([]string{"nope"}, map[string]string{"stage-id": "3"})

	err := h.Deploy(context.Background(), req)

	var rejection *errors.RemoteRejection
	require.True(t, errors.As(err, &rejection))
	require.Equal(t, 422, rejection.Status)
	require.Equal(t, "invalid reference", rejection.Message)
}

func TestDeployWithoutReference(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\nproject_id: 42\n", srv.URL, "")
	req, _ := newCommand(nil, map[string]string{"stage-id": "4"})

	err := h.Deploy(context.Background(), req)
	require.True(t, errors.Is(err, errors.MissingReference))
}

func TestDeployWithoutStageOutsideTerminal(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\nproject_id: 42\n", srv.URL, "main")
	req, _ := newCommand(nil, nil)

	err := h.Deploy(context.Background(), req)
	require.True(t, errors.Is(err, errors.MissingStageID))
}

func TestDeployAnnouncesPickedStage(t *testing.T) {
	var deploys []deployCall
	srv := fakeSamson(t, &deploys)
	h := newHandler(t, "token: abc\nproject_id: 42\n", srv.URL, "main")
	h.interactive = func() bool { return true }
	var offered []*entity.Stage
	h.pickStage = func(stages []*entity.Stage) (*entity.Stage, error) {
		offered = stages
		return stages[1], nil
	}
	req, out := newCommand(nil, nil)
	var errOut bytes.Buffer
	req.Cmd.SetErr(&errOut)

	require.NoError(t, h.Deploy(context.Background(), req))

	require.Equal(t, []*entity.Stage{{Id: 3, Name: "staging"}, {Id: 4, Name: "production"}}, offered)
	require.Equal(t, []deployCall{{Path: "/projects/42/stages/4/deploys.json", Reference: "main"}}, deploys)
	notice := strings.Index(out.String(), "Deploying to stage")
	require.GreaterOrEqual(t, notice, 0)
	require.Less(t, notice, strings.Index(out.String(), "Deploy started"))
	require.Contains(t, out.String()[notice:], "production")
	require.Empty(t, errOut.String())
}

func TestDeployPickerCanceled(t *testing.T) {
	var deploys []deployCall
	srv := fakeSamson(t, &deploys)
	h := newHandler(t, "token: abc\nproject_id: 42\n", srv.URL, "main")
	h.interactive = func() bool { return true }
	h.pickStage = func([]*entity.Stage) (*entity.Stage, error) {
		return nil, errors.New("^C")
	}
	req, _ := newCommand(nil, nil)

	require.Error(t, h.Deploy(context.Background(), req))
	require.Empty(t, deploys)
}

func TestDeployRejectsNonPositiveIDs(t *testing.T) {
	srv := fakeSamson(t, nil)
	h := newHandler(t, "token: abc\n", srv.URL, "main")
	req, _ := newCommand(nil, map[string]string{"project-id": "-1", "stage-id": "4"})

	require.Error(t, h.Deploy(context.Background(), req))
}

func TestLoginLinkUnlinkLogout(t *testing.T) {
	h := newHandler(t, "", "https://samson.example.com", "")
	h.token = "new-token"

	req, out := newCommand(nil, nil)
	require.NoError(t, h.Login(context.Background(), req))
	require.Contains(t, out.String(), "Token saved")
	require.Equal(t, "new-token", h.cfg.Token())

	req, out = newCommand([]string{"42"}, nil)
	require.NoError(t, h.Link(context.Background(), req))
	require.Contains(t, out.String(), "42")
	id, ok := h.cfg.ProjectID()
	require.True(t, ok)
	require.Equal(t, 42, id)

	req, out = newCommand(nil, nil)
	require.NoError(t, h.Unlink(context.Background(), req))
	require.Contains(t, out.String(), "Disconnected")
	_, ok = h.cfg.ProjectID()
	require.False(t, ok)

	req, out = newCommand(nil, nil)
	require.NoError(t, h.Unlink(context.Background(), req))
	require.Contains(t, out.String(), "No project is currently linked")

	req, out = newCommand(nil, nil)
	require.NoError(t, h.Logout(context.Background(), req))
	require.Contains(t, out.String(), "Logged out")
	require.Empty(t, h.cfg.Token())

	req, out = newCommand(nil, nil)
	require.NoError(t, h.Logout(context.Background(), req))
	require.Contains(t, out.String(), "Already logged out")
}

func TestLoginRejectsUnsendableToken(t *testing.T) {
	h := newHandler(t, "", "https://samson.example.com", "")
	h.token = "bad\ntoken"
	req, _ := newCommand(nil, nil)

	err := h.Login(context.Background(), req)

	var buildErr *errors.ClientBuildError
	require.True(t, errors.As(err, &buildErr))
	require.Empty(t, h.cfg.Token())
}

func TestLinkRejectsInvalidID(t *testing.T) {
	h := newHandler(t, "", "https://samson.example.com", "")
	req, _ := newCommand([]string{"abc"}, nil)

	require.Error(t, h.Link(context.Background(), req))
}

func TestStatusDoesNotNeedTheNetwork(t *testing.T) {
	h := newHandler(t, "token: abc\nproject_id: 42\n", "http://127.0.0.1:1", "feature-x")
	req, out := newCommand(nil, nil)

	require.NoError(t, h.Status(context.Background(), req))

	require.Contains(t, out.String(), "42")
	require.Contains(t, out.String(), "feature-x")
	require.NotContains(t, out.String(), "not set")
}

func TestVersion(t *testing.T) {
	h := New()
	req, out := newCommand(nil, nil)

	require.NoError(t, h.Version(context.Background(), req))
	require.Contains(t, out.String(), "samson version")
}
