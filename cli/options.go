package cli

// Options are the leadsdesk command line options.
type Options struct {
	Config   string `short:"c" long:"config" description:"yaml config file"`
	URL      string `short:"u" long:"url" description:"api base url, e.g. http://127.0.0.1:8000/api/"`
	Session  string `short:"s" long:"session" description:"session store url"`
	LogLevel string `short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`

	Login    LoginCommand    `command:"login" description:"obtain and store a credential pair"`
	Logout   struct{}        `command:"logout" description:"remove the stored credential pair"`
	Status   struct{}        `command:"status" description:"show the stored session"`
	List     ListCommand     `command:"list" description:"list a resource collection"`
	Get      ItemCommand     `command:"get" description:"get a resource item"`
	Delete   ItemCommand     `command:"delete" description:"delete a resource item"`
	Navigate NavigateCommand `command:"navigate" description:"evaluate navigation to a dashboard path"`
	Mock     MockCommand     `command:"mock" description:"serve a fake backend"`
}

type LoginCommand struct {
	Username string `short:"U" long:"username" description:"username" required:"true"`
	Password string `short:"P" long:"password" description:"password" required:"true"`
}

type ListCommand struct {
	Args struct {
		Resource string `positional-arg-name:"resource" description:"leads, followups, meetings, quotations, deals, users or activities"`
	} `positional-args:"yes" required:"yes"`
}

type ItemCommand struct {
	Args struct {
		Resource string `positional-arg-name:"resource"`
		ID       string `positional-arg-name:"id"`
	} `positional-args:"yes" required:"yes"`
}

type NavigateCommand struct {
	Args struct {
		Path string `positional-arg-name:"path"`
	} `positional-args:"yes" required:"yes"`
}

type MockCommand struct {
	Addr     string `short:"a" long:"addr" description:"listen address" default:"127.0.0.1:8000"`
	Username string `short:"U" long:"username" description:"seeded username" default:"admin"`
	Password string `short:"P" long:"password" description:"seeded password" default:"admin"`
}
