package setup

import "strings"

const schemaPlaceholder = `# relay-compiler reads this schema to type-check and generate artifacts.
# Replace it with the schema of your GraphQL server.
type Query {
  placeholder: String
}
`

// environmentSource renders the Relay environment module. The typed variant
// annotates with relay-runtime types; the subscriptions variant wires the
// realtime channel into the network layer.
func environmentSource(typed, subscriptions bool) string {
	var b strings.Builder

	runtimeImports := []string{"Environment", "Network", "RecordSource", "Store"}
	b.WriteString("import {\n")
	for _, name := range runtimeImports {
		b.WriteString("  " + name + ",\n")
	}
	if typed {
		b.WriteString("  type FetchFunction,\n")
	}
	b.WriteString("} from \"relay-runtime\";\n")
	if subscriptions {
		b.WriteString("import { subscribe } from \"./relaySubscriptions\";\n")
	}
	b.WriteString("\n")

	if typed {
		b.WriteString("const fetchFn: FetchFunction = async (request, variables) => {\n")
	} else {
		b.WriteString("const fetchFn = async (request, variables) => {\n")
	}
	b.WriteString(`  const response = await fetch("/graphql", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ query: request.text, variables }),
  });
  return response.json();
};

`)

	network := "Network.create(fetchFn)"
	if subscriptions {
		network = "Network.create(fetchFn, subscribe)"
	}
	b.WriteString("export default new Environment({\n")
	b.WriteString("  network: " + network + ",\n")
	b.WriteString("  store: new Store(new RecordSource()),\n")
	b.WriteString("});\n")
	return b.String()
}

// subscriptionsSource renders the graphql-ws based subscribe function for the
// realtime channel.
func subscriptionsSource(typed bool) string {
	var b strings.Builder

	b.WriteString("import { createClient } from \"graphql-ws\";\n")
	if typed {
		b.WriteString("import { Observable, type SubscribeFunction } from \"relay-runtime\";\n")
	} else {
		b.WriteString("import { Observable } from \"relay-runtime\";\n")
	}
	b.WriteString(`
const wsClient = createClient({
  url: "ws://localhost:4000/graphql",
});

`)
	if typed {
		b.WriteString("export const subscribe: SubscribeFunction = (request, variables) => {\n")
	} else {
		b.WriteString("export const subscribe = (request, variables) => {\n")
	}
	b.WriteString(`  return Observable.create((sink) => {
    return wsClient.subscribe(
      {
        operationName: request.name,
        query: request.text ?? "",
        variables,
      },
      sink,
    );
  });
};
`)
	return b.String()
}
